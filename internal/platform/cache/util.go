package cache

import (
	"net/url"
	"strconv"
	"strings"

	"investiguide_backend/internal/feature/funds/domain/entity"
)

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}

// filterKey はフィルタを正規化したキャッシュキーの一部に変換します。
// 同じ条件は常に同じ文字列になり、未指定と空文字の名前は区別されます。
func filterKey(f entity.FundFilter) string {
	if f.IsEmpty() {
		return "all"
	}
	var b strings.Builder
	writeID := func(tag string, v *uint) {
		b.WriteString(tag)
		b.WriteByte('=')
		if v != nil {
			b.WriteString(strconv.FormatUint(uint64(*v), 10))
		}
		b.WriteByte(';')
	}
	writeID("ac", f.AssetClassID)
	writeID("c", f.CountryID)
	writeID("i", f.IndustryID)
	writeID("is", f.IssuerID)

	b.WriteString("esg=")
	for i, id := range f.EsgConcernIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	b.WriteByte(';')

	if f.NamePrefix != nil {
		// QueryEscapeの結果には空白や:が含まれない
		b.WriteString("n=")
		b.WriteString(url.QueryEscape(*f.NamePrefix))
	}
	return b.String()
}
