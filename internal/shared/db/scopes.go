package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// ContainsFold matches any of columns against term as a case-insensitive
// substring. LOWER() on both sides keeps it portable across mysql, postgres
// and sqlite.
func ContainsFold(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		pattern := LikePattern(term)
		clauses := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '!'")
			args = append(args, pattern)
		}
		return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// LikePattern lowercases term, escapes LIKE wildcards with '!' and wraps it in %.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
