package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/config"
)

type Repository struct {
	DB       *sql.DB
	Product  ProductRepository
	Diagnose DiagnoseRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		Product:  NewProductRepo(db),
		Diagnose: NewDiagnoseRepo(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
