package models

// Project описывает проект из таблицы "Projetos", спроецированный на нужные странице поля.
type Project struct {
	ID        int64   `db:"id" json:"id"`
	Titulo    string  `db:"titulo" json:"titulo"`
	TipoMidia *string `db:"tipo_midia" json:"tipo_midia,omitempty"`
}
