package database

import (
	"database/sql"
	"fmt"
)

func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS members (
			id UUID PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			sexo VARCHAR(50) NOT NULL,
			idade INTEGER NOT NULL,
			endereco VARCHAR(255),
			email VARCHAR(255),
			telefone VARCHAR(70),
			data_cadastro TIMESTAMP NOT NULL DEFAULT now()
		);`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(30) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			hashed_password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP NOT NULL DEFAULT now()
		);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("erro ao executar a query: %v\n%v", err, query)
		}
	}

	return nil
}
