package render

// Tooltips 主题卡片各字段的说明文字
var Tooltips = map[string]string{
	"caption": "Provides contextual framing for the displayed set of themes.\n\nIncludes:\n" +
		"• Scope of observable cultural signals (e.g., social media, news, forums, videos, images)\n" +
		"• Timeframe of data collection and processing\n" +
		"• Last scan date for freshness assessment",
	"title": "Canonical identifier for the cultural theme, generated from aggregated multimodal signals:\n" +
		"• Sources: social media, news, web articles, images, videos, transcripts\n" +
		"• Optimized for cross-market recognition and longitudinal tracking\n" +
		"• Serves as the primary key for analytical reference",
	"subtitle": "One-line narrative descriptor summarizing the cultural essence of the theme:\n" +
		"• Expressed in accessible, non-technical language\n" +
		"• Captures the interpretive framing analysts use in cultural intelligence outputs\n" +
		"• Does not include quantitative or operational metadata",
	"momentum": "Growth velocity of the theme, based on month-over-month (MoM) change in total signal volume:\n" +
		"• Surging: > 50% MoM increase\n" +
		"• Rising: 10–50% MoM increase\n" +
		"• Stable: ±10% MoM change\n" +
		"• Plateauing: < 10% growth with signs of slowdown\n" +
		"• Declining: > 10% MoM decrease\n\n" +
		"Calculated from absolute signal volume difference between periods.",
	"also_emerging_in": "List of secondary geographies/markets where the theme shows statistically significant growth:\n" +
		"• Identified by cross-market signal clustering\n" +
		"• Requires both relative growth and minimum absolute signal volume threshold",
	"maturity": "Lifecycle stage of the theme, inferred from observation period length and adoption breadth:\n" +
		"• Nascent: very new; <3 months observed; early, niche attention\n" +
		"• Emerging: 3–6 months observed; traction in early adopter segments\n" +
		"• Scaling: 6–18 months; rapid adoption across multiple sectors or markets\n" +
		"• Established: >18 months; normalized presence and mainstream adoption\n\n" +
		"Derived from persistent detection in consecutive scans and breadth of category/market penetration.",
	"last_scan": "Date/time of most recent successful ingestion of signals linked to this theme:\n" +
		"• Indicates currentness of insights\n" +
		"• Used to assess risk of staleness in decision-making contexts\n" +
		"• Always expressed in YYYY-MM-DD format for machine-readability",
	"summary_box": "Executive synthesis providing a high-level answer to *What is this theme and why does it matter?*:\n" +
		"• Combines cultural meaning, key actors, and relevance drivers\n" +
		"• Written for quick strategic consumption by non-technical stakeholders\n" +
		"• Distills narrative without full technical context",
	"story": "Narrative core of the theme:\n" +
		"• Explains what the theme represents\n" +
		"• Describes its emergence and evolution over time\n" +
		"• Links to broader cultural, economic, or technological shifts\n" +
		"• Informed by aggregated qualitative coding of multimodal signals",
	"proof_points": "Evidence corpus showing the theme in action:\n" +
		"• May include social posts, article excerpts, influencer content, product launches, campaign visuals\n" +
		"• Selected for representativeness and clarity\n" +
		"• Annotated with engagement metrics (e.g., views, likes, shares) where available",
	"quotes": "Direct verbatim statements from individuals or influencers illustrating the theme:\n" +
		"• Captured from qualitative coding of social media, interviews, or content transcripts\n" +
		"• Selected for diversity of voice and authenticity\n" +
		"• May include demographic or contextual metadata (e.g., age, location, role)",
	"personas": "Consumer archetype definitions for segments engaging with the theme:\n" +
		"• Label: human-readable segment name\n" +
		"• Description: behavioral and attitudinal profile, supported by observed signals\n" +
		"• Derived from thematic clustering of user behaviors and preferences",
	"drivers": "Underlying causal forces accelerating or enabling the theme:\n" +
		"• Can be economic, cultural, technological, or regulatory\n" +
		"• Each driver is supported by observed trend data or signal clusters\n" +
		"• Used for forecasting and scenario planning",
	"other_markets": "Comparative market lens showing how the same cultural idea manifests elsewhere:\n" +
		"• Includes similarities and divergences in expression\n" +
		"• Drawn from localized signal pools per geography or culture\n" +
		"• Supports cross-market strategy alignment",
	"language": "Linguistic fingerprint of the theme:\n" +
		"• Keywords, hashtags, idioms, and phrases disproportionately associated with the theme in the selected market\n" +
		"• Based on comparative frequency analysis against all other markets as a baseline\n" +
		"• Includes both English terms and equivalent translations in local languages\n" +
		"• Useful for content targeting, message localisation, and search optimisation",
	"evolution": "Temporal change map of the theme:\n" +
		"• Past state: how it first appeared in cultural discourse\n" +
		"• Present state: current dominant framing and behaviors\n" +
		"• Next state: projected or emergent shifts based on recent signal patterns\n" +
		"• Supports innovation timing and portfolio adaptation",
	"signals": "Leading indicators to monitor for theme trajectory changes:\n" +
		"• Quantitative triggers (e.g., rapid MoM growth, cross-category adoption)\n" +
		"• Qualitative triggers (e.g., new influencer adoption, media framing shift)\n" +
		"• Each signal mapped to potential impact scenarios",
}
