package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ParseID は正の整数として解釈できる場合のみ ID を返します。0 や負数、小数は無効です。
func ParseID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// OptionalID はJSON上の「未指定」「null」「値あり」を区別して受け取るIDです。
// 値は数値と数値文字列のどちらでも受け付けます。
type OptionalID struct {
	Set  bool
	Null bool
	Raw  string
}

// IDValue は値ありの OptionalID を作ります。
func IDValue(id uint) OptionalID {
	return OptionalID{Set: true, Raw: strconv.FormatUint(uint64(id), 10)}
}

// NullID は明示的な null を表す OptionalID を作ります。
func NullID() OptionalID {
	return OptionalID{Set: true, Null: true}
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		o.Null = true
		o.Raw = ""
		return nil
	}
	o.Null = false
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		o.Raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	o.Raw = n.String()
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	if id, ok := ParseID(o.Raw); ok {
		return []byte(strconv.FormatUint(uint64(id), 10)), nil
	}
	return json.Marshal(o.Raw)
}

// IsZero は未指定かどうかを返します。omitzero で未指定のフィールドを省略するために使います。
func (o OptionalID) IsZero() bool {
	return !o.Set
}

// ID は値ありで正の整数の場合のみ ID を返します。
func (o OptionalID) ID() (uint, bool) {
	if !o.Set || o.Null {
		return 0, false
	}
	return ParseID(o.Raw)
}

// Present は値ありとして指定されたかどうかを返します。
func (o OptionalID) Present() bool {
	return o.Set && !o.Null
}
