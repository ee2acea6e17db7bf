package repository

import "strings"

// SearchFilter описывает необязательные условия поиска достопримечательностей.
// Пустое поле означает отсутствие соответствующего условия.
type SearchFilter struct {
	Category string // точное совпадение категории
	Keyword  string // точное совпадение станции метро ИЛИ подстрока в названии
}

// Clauses возвращает список условий WHERE и параллельный список значений для привязки.
// Значения никогда не подставляются в текст запроса - только через плейсхолдеры,
// поэтому никакого экранирования здесь не требуется.
func (f SearchFilter) Clauses() ([]string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if f.Keyword != "" {
		// Станция сравнивается точно, название - подстрокой без учета регистра.
		clauses = append(clauses, "(mrt = ? OR LOWER(name) LIKE LOWER(?))")
		args = append(args, f.Keyword, "%"+f.Keyword+"%")
	}
	return clauses, args
}

// WhereSQL собирает фрагмент "WHERE ... AND ..." из условий фильтра.
// Возвращает пустую строку и пустой список значений, если условий нет.
func (f SearchFilter) WhereSQL() (string, []interface{}) {
	clauses, args := f.Clauses()
	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
