package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Section is the coarse budget grouping used by monthly budgets. Free-text
// expense categories are folded into one of the four sections by SectionOf.
type Section string

const (
	SectionPotreby      Section = "POTREBY"
	SectionVolnyCas     Section = "VOLNY_CAS"
	SectionSporenie     Section = "SPORENIE"
	SectionInvestovanie Section = "INVESTOVANIE"
)

func AllSections() []Section {
	return []Section{SectionPotreby, SectionVolnyCas, SectionSporenie, SectionInvestovanie}
}

func IsValidSection(s string) bool {
	switch Section(s) {
	case SectionPotreby, SectionVolnyCas, SectionSporenie, SectionInvestovanie:
		return true
	default:
		return false
	}
}

var sectionKeywords = map[string]Section{
	"byvanie":              SectionPotreby,
	"jedlo":                SectionPotreby,
	"obliekanie":           SectionPotreby,
	"lieky":                SectionPotreby,
	"cistiace prostriedky": SectionPotreby,
	"mobil":                SectionPotreby,
	"streaming":            SectionPotreby,
	"doprava":              SectionPotreby,
	"alt tools":            SectionPotreby,
	"google":               SectionPotreby,
	"volny cas":            SectionVolnyCas,
	"zabava":               SectionVolnyCas,
	"hry":                  SectionVolnyCas,
	"kino":                 SectionVolnyCas,
	"restauracia":          SectionVolnyCas,
	"sporenie":             SectionSporenie,
	"rezerva":              SectionSporenie,
	"investovanie":         SectionInvestovanie,
	"akcie":                SectionInvestovanie,
	"krypto":               SectionInvestovanie,
}

// SectionOf maps a free-text category to its budget section. Matching is
// case-insensitive; unmapped categories fall back to POTREBY.
func SectionOf(category string) Section {
	if s, ok := sectionKeywords[strings.ToLower(strings.TrimSpace(category))]; ok {
		return s
	}
	return SectionPotreby
}

// MonthlyBudget holds one section limit for one month ("YYYY-MM"). There is
// at most one row per (month, section).
type MonthlyBudget struct {
	ID            string          `db:"id"`
	Month         string          `db:"month"`
	Section       Section         `db:"section"`
	LimitAmount   decimal.Decimal `db:"limit_amount"`
	PercentTarget decimal.Decimal `db:"percent_target"`
}

type GoalType string

const (
	GoalTypeMonthly  GoalType = "monthly"
	GoalTypeLongterm GoalType = "longterm"
)

func IsValidGoalType(t string) bool {
	return GoalType(t) == GoalTypeMonthly || GoalType(t) == GoalTypeLongterm
}

type Goal struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Type         GoalType        `db:"type"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Section      Section         `db:"section"`
	MonthFrom    string          `db:"month_from"`
	MonthTo      string          `db:"month_to"`
	IsDone       bool            `db:"is_done"`
	CreatedAt    time.Time       `db:"created_at"`
}
