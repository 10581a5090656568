package planilhadomain

// RawTable é o export CSV da planilha de eventos, sem nenhum tratamento:
// o cabeçalho original e as linhas na ordem em que chegaram.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// Empty indica export sem linhas de dados.
func (t *RawTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}
