package catalog

import (
	"strconv"
	"strings"

	"tekbir/internal/domain"
)

// Sheet columns A..L, 0-indexed. Column 10 is reserved in the sheet layout.
const (
	colID = iota
	colName
	colPrice
	colCategory
	colBrand
	colCondition
	colCapacity
	colPhotos
	colDescription
	colColor
	_
	colStatus
)

type synonym struct {
	key      string
	category string
}

// categorySynonyms maps free-text category/brand cells to the closed set.
// Order matters: ClassifyCategory falls back to a substring scan and the
// first declared key wins, so compound keys ("apple watch") must precede the
// general ones ("apple") they contain.
var categorySynonyms = []synonym{
	{"apple watch", domain.CategoryWatch},
	{"watch", domain.CategoryWatch},
	{"air pods", domain.CategoryAirPods},
	{"airpods", domain.CategoryAirPods},
	{"macbook", domain.CategoryMacBook},
	{"mac", domain.CategoryMacBook},
	{"ipad", domain.CategoryIPad},
	{"iphone", domain.CategoryIPhone},
	{"apple", domain.CategoryIPhone},
	{"айфон", domain.CategoryIPhone},
	{"xiaomi", domain.CategoryXiaomi},
	{"mi", domain.CategoryXiaomi},
	{"samsung", domain.CategorySamsung},
}

// ClassifyCategory resolves a raw category cell: exact match first, then a
// substring scan in declared order, else Other.
func ClassifyCategory(raw string) string {
	key := strings.TrimSpace(strings.ToLower(raw))
	if key == "" {
		return domain.CategoryOther
	}
	for _, s := range categorySynonyms {
		if s.key == key {
			return s.category
		}
	}
	for _, s := range categorySynonyms {
		if strings.Contains(key, s.key) {
			return s.category
		}
	}
	return domain.CategoryOther
}

// ClassifyCondition treats anything mentioning used/б-у as used, else new.
func ClassifyCondition(raw string) string {
	v := strings.ToLower(raw)
	if strings.Contains(v, "used") || strings.Contains(v, "б/у") || strings.Contains(v, "бу") {
		return domain.ConditionUsed
	}
	return domain.ConditionNew
}

// ParsePhotos splits a cell on runs of whitespace and commas and keeps the
// tokens that look like URLs, in order.
func ParsePhotos(cell string) []string {
	out := []string{}
	for _, tok := range strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		tok = strings.TrimSpace(tok)
		if strings.HasPrefix(tok, "http") {
			out = append(out, tok)
		}
	}
	return out
}

func parsePrice(cell string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Normalize converts raw sheet rows into products. It never rejects a row:
// every field degrades to a defined default.
func Normalize(rows [][]string) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for idx, row := range rows {
		id := cellAt(row, colID)
		if id == "" {
			id = "row-" + strconv.Itoa(idx)
		}
		name := cellAt(row, colName)
		if name == "" {
			name = "Без названия"
		}
		status := cellAt(row, colStatus)
		switch status {
		case domain.StatusReserved, domain.StatusSold:
		default:
			// unknown literals count as available
			status = domain.StatusAvailable
		}

		photos := ParsePhotos(cellAt(row, colPhotos))
		photo := ""
		if len(photos) > 0 {
			photo = photos[0]
		}

		out = append(out, domain.Product{
			ID:          id,
			Name:        name,
			Price:       parsePrice(cellAt(row, colPrice)),
			Category:    ClassifyCategory(cellAt(row, colCategory)),
			Brand:       cellAt(row, colBrand),
			Condition:   ClassifyCondition(cellAt(row, colCondition)),
			Capacity:    cellAt(row, colCapacity),
			Photo:       photo,
			Photos:      photos,
			Description: cellAt(row, colDescription),
			Color:       cellAt(row, colColor),
			Status:      status,
		})
	}
	return out
}
