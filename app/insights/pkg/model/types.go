package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TextList 字符串列表，JSON 中也可以是单个字符串
type TextList []string

// UnmarshalJSON 接受字符串、字符串数组或 null
func (l *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = TextList{s}
		}
		return nil
	}
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("text list: %w", err)
	}
	out := make(TextList, 0, len(raw))
	for _, v := range raw {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("text list item %v: %w", v, err)
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

// FlexString 可由字符串或数字解码的展示字段，例如 share、followers
type FlexString string

// UnmarshalJSON 接受任意 JSON 标量
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Errorf("flex string %s: %w", data, err)
	}
	*f = FlexString(s)
	return nil
}

// String 实现 fmt.Stringer
func (f FlexString) String() string { return string(f) }

// Entries 标签到 markdown 文本的有序映射。
// JSON 中可以是对象（保留插入顺序）、数组或单个字符串，三者只会有一个被填充。
type Entries struct {
	Text  string
	List  []string
	Pairs *orderedmap.OrderedMap[string, string]
}

// Pair 有序映射中的一项
type Pair struct {
	Key   string
	Value string
}

// NewEntries 由键值对构造有序映射
func NewEntries(pairs ...Pair) Entries {
	om := orderedmap.New[string, string]()
	for _, p := range pairs {
		om.Set(p.Key, p.Value)
	}
	return Entries{Pairs: om}
}

// IsEmpty 没有任何内容时为 true
func (e Entries) IsEmpty() bool {
	return e.Text == "" && len(e.List) == 0 && (e.Pairs == nil || e.Pairs.Len() == 0)
}

// Items 按插入顺序返回键值对
func (e Entries) Items() []Pair {
	if e.Pairs == nil {
		return nil
	}
	out := make([]Pair, 0, e.Pairs.Len())
	for p := e.Pairs.Oldest(); p != nil; p = p.Next() {
		out = append(out, Pair{Key: p.Key, Value: p.Value})
	}
	return out
}

// UnmarshalJSON 解析对象、数组或字符串
func (e *Entries) UnmarshalJSON(data []byte) error {
	*e = Entries{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &e.Text)
	case '[':
		var l TextList
		if err := l.UnmarshalJSON(data); err != nil {
			return err
		}
		e.List = l
		return nil
	case '{':
		raw := orderedmap.New[string, any]()
		if err := raw.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("entries: %w", err)
		}
		e.Pairs = orderedmap.New[string, string](raw.Len())
		for p := raw.Oldest(); p != nil; p = p.Next() {
			e.Pairs.Set(p.Key, cast.ToString(p.Value))
		}
		return nil
	default:
		return fmt.Errorf("entries: unsupported JSON %s", data)
	}
}

// MarshalJSON 按原有形态输出
func (e Entries) MarshalJSON() ([]byte, error) {
	switch {
	case e.Pairs != nil:
		return e.Pairs.MarshalJSON()
	case e.List != nil:
		return json.Marshal(e.List)
	case e.Text != "":
		return json.Marshal(e.Text)
	default:
		return []byte("null"), nil
	}
}

// Quote 引语，可带出处
type Quote struct {
	Text        string
	Attribution string
}

// UnmarshalJSON 接受 ["text", "author"]、"text" 或 {"text": ..., "author": ...}
func (q *Quote) UnmarshalJSON(data []byte) error {
	*q = Quote{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &q.Text)
	case '[':
		var pair []string
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("quote: %w", err)
		}
		if len(pair) == 2 {
			q.Text, q.Attribution = pair[0], pair[1]
			return nil
		}
		if len(pair) == 1 {
			q.Text = pair[0]
			return nil
		}
		return fmt.Errorf("quote: expected [text, attribution], got %d items", len(pair))
	case '{':
		var obj struct {
			Text        string `json:"text"`
			Quote       string `json:"quote"`
			Author      string `json:"author"`
			Attribution string `json:"attribution"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("quote: %w", err)
		}
		q.Text = firstNonEmpty(obj.Text, obj.Quote)
		q.Attribution = firstNonEmpty(obj.Attribution, obj.Author)
		return nil
	case 'n':
		return nil
	default:
		return fmt.Errorf("quote: unsupported JSON %s", data)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
