package domain

// Catalog 品牌及其研究列表
type Catalog struct {
	Brand   string   `json:"brand"`
	Studies []string `json:"studies"`
}

// PageRequest 洞察页查询参数
type PageRequest struct {
	Brand string `json:"brand"`
	Study string `json:"study"`
}

// AskRequest 助手提问请求
type AskRequest struct {
	Prompt string `json:"prompt"`
	Deep   bool   `json:"deep"`
	Brand  string `json:"brand"`
	Study  string `json:"study"`
}

// AskReply 助手回答
type AskReply struct {
	Answer  string `json:"answer"`
	Sources string `json:"sources,omitempty"`
	Deep    bool   `json:"deep"`
}

// BrandsReply 品牌列表
type BrandsReply struct {
	Brands []*Catalog `json:"brands"`
}
