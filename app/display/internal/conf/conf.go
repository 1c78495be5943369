package conf

type Bootstrap struct {
	Server   *Server   `json:"server"`
	Data     *Data     `json:"data"`
	Insights *Insights `json:"insights"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Dir         string `json:"dir"`
	ResearchDir string `json:"research_dir"`
	Watch       bool   `json:"watch"`
}

type Insights struct {
	Llm         *LLM         `json:"llm"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Render      *Render      `json:"render"`
}

type LLM struct {
	BaseUrl      string   `json:"base_url"`
	ApiKey       string   `json:"api_key"`
	Model        string   `json:"model"`
	MaxTokens    int32    `json:"max_tokens"`
	Temperature  *float32 `json:"temperature"`
	SystemPrompt string   `json:"system_prompt"`
	Timeout      int32    `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type Render struct {
	Palette   []string `json:"palette"`
	TitleSize int32    `json:"title_size"`
}
