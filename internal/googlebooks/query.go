package googlebooks

import (
	"sort"
	"strings"
)

// QueryTerms - набор слагаемых одного типа поиска (общий или по полю).
// Слагаемое не может быть одновременно во включенных и исключенных:
// последний вызов побеждает.
type QueryTerms struct {
	field   string
	include map[string]struct{}
	exclude map[string]struct{}
}

func newQueryTerms(field string) *QueryTerms {
	return &QueryTerms{
		field:   field,
		include: make(map[string]struct{}),
		exclude: make(map[string]struct{}),
	}
}

// Include добавляет слова запроса (каждое слово - отдельное слагаемое).
func (t *QueryTerms) Include(text string) *QueryTerms {
	for _, word := range strings.Fields(text) {
		t.include[word] = struct{}{}
		delete(t.exclude, word)
	}
	return t
}

// IncludeExact добавляет точную фразу целиком (в кавычках).
func (t *QueryTerms) IncludeExact(text string) *QueryTerms {
	phrase := `"` + text + `"`
	t.include[phrase] = struct{}{}
	delete(t.exclude, phrase)
	return t
}

// Exclude требует отсутствия каждого слова в результатах.
func (t *QueryTerms) Exclude(text string) *QueryTerms {
	for _, word := range strings.Fields(text) {
		t.exclude[word] = struct{}{}
		delete(t.include, word)
	}
	return t
}

// ExcludeExact требует отсутствия точной фразы.
func (t *QueryTerms) ExcludeExact(text string) *QueryTerms {
	phrase := `"` + text + `"`
	t.exclude[phrase] = struct{}{}
	delete(t.include, phrase)
	return t
}

func (t *QueryTerms) empty() bool {
	return len(t.include) == 0 && len(t.exclude) == 0
}

func (t *QueryTerms) encode() string {
	sb := strings.Builder{}

	for _, term := range sortedTerms(t.include) {
		sb.WriteString("+")
		t.writeTerm(&sb, term)
	}

	for _, term := range sortedTerms(t.exclude) {
		sb.WriteString("-")
		t.writeTerm(&sb, term)
	}

	return sb.String()
}

func (t *QueryTerms) writeTerm(sb *strings.Builder, term string) {
	if t.field != "" {
		sb.WriteString(t.field)
		sb.WriteString(":")
	}
	sb.WriteString(term)
}

func sortedTerms(set map[string]struct{}) []string {
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// queryFields - допустимые API типы поиска по полям, в порядке кодирования.
var queryFields = []string{"intitle", "inauthor", "inpublisher", "subject", "isbn", "lccn", "oclc"}

// Query собирает строку параметра q для поиска томов.
type Query struct {
	main    *QueryTerms
	fielded map[string]*QueryTerms
}

func NewQuery() *Query {
	fielded := make(map[string]*QueryTerms, len(queryFields))
	for _, field := range queryFields {
		fielded[field] = newQueryTerms(field)
	}
	return &Query{
		main:    newQueryTerms(""),
		fielded: fielded,
	}
}

func (q *Query) Include(text string) *Query {
	q.main.Include(text)
	return q
}

func (q *Query) IncludeExact(text string) *Query {
	q.main.IncludeExact(text)
	return q
}

func (q *Query) Exclude(text string) *Query {
	q.main.Exclude(text)
	return q
}

func (q *Query) ExcludeExact(text string) *Query {
	q.main.ExcludeExact(text)
	return q
}

// Title - поиск только в названиях книг.
func (q *Query) Title() *QueryTerms { return q.fielded["intitle"] }

// Author - поиск только по авторам и редакторам.
func (q *Query) Author() *QueryTerms { return q.fielded["inauthor"] }

// Publisher - поиск только по издателям.
func (q *Query) Publisher() *QueryTerms { return q.fielded["inpublisher"] }

// Subject - поиск только по категориям.
func (q *Query) Subject() *QueryTerms { return q.fielded["subject"] }

// ISBN - поиск по ISBN номерам.
func (q *Query) ISBN() *QueryTerms { return q.fielded["isbn"] }

// LCCN - поиск по Library of Congress Control номерам.
func (q *Query) LCCN() *QueryTerms { return q.fielded["lccn"] }

// OCLC - поиск по Online Computer Library Center номерам.
func (q *Query) OCLC() *QueryTerms { return q.fielded["oclc"] }

func (q *Query) Empty() bool {
	if !q.main.empty() {
		return false
	}
	for _, field := range queryFields {
		if !q.fielded[field].empty() {
			return false
		}
	}
	return true
}

// Encode собирает итоговую строку запроса: сначала общие слагаемые,
// затем по полям в фиксированном порядке.
func (q *Query) Encode() string {
	sb := strings.Builder{}
	sb.WriteString(q.main.encode())
	for _, field := range queryFields {
		sb.WriteString(q.fielded[field].encode())
	}
	return sb.String()
}
