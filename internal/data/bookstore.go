package data

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// BookModel persists the reference dataset so several instances can share
// one edited copy instead of the embedded table.
type BookModel interface {
	GetAll() ([]Book, error)
	Insert(book Book) error
}

type bookModel struct {
	DB *sql.DB
}

func NewBookModel(db *sql.DB) *bookModel {
	return &bookModel{DB: db}
}

// GetAll returns every stored book with its aliases, both in declaration order.
func (m *bookModel) GetAll() ([]Book, error) {
	query := `
		SELECT b.abbrev, b.name, b.chapters,
			COALESCE(array_agg(a.alias ORDER BY a.position) FILTER (WHERE a.alias IS NOT NULL), '{}')
		FROM books AS b
		LEFT JOIN book_aliases AS a ON a.book_id = b.id
		GROUP BY b.id
		ORDER BY b.position`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book

	for rows.Next() {
		var book Book
		err := rows.Scan(&book.Abbrev, &book.Name, &book.Chapters, pq.Array(&book.Aliases))
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, ErrRecordNotFound
	}

	return books, nil
}

// Insert stores book, replacing the name, chapter count and aliases of an
// existing book with the same abbreviation.
func (m *bookModel) Insert(book Book) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO books (abbrev, name, chapters, position)
		VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), 0) + 1 FROM books))
		ON CONFLICT (abbrev) DO UPDATE
			SET name = EXCLUDED.name, chapters = EXCLUDED.chapters
		RETURNING id`

	var bookID int64
	err = tx.QueryRowContext(ctx, query, book.Abbrev, book.Name, book.Chapters).Scan(&bookID)
	if err != nil {
		return fmt.Errorf("insert book %q: %w", book.Abbrev, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM book_aliases WHERE book_id = $1`, bookID)
	if err != nil {
		return fmt.Errorf("clear aliases of %q: %w", book.Abbrev, err)
	}

	query = `
		INSERT INTO book_aliases (book_id, alias, position)
		SELECT $1, a.alias, a.position
		FROM unnest($2::text[]) WITH ORDINALITY AS a(alias, position)
		ON CONFLICT DO NOTHING`

	_, err = tx.ExecContext(ctx, query, bookID, pq.Array(book.Aliases))
	if err != nil {
		return fmt.Errorf("insert aliases of %q: %w", book.Abbrev, err)
	}

	return tx.Commit()
}

// LoadDatasetFromDB builds the dataset from the books table.
func LoadDatasetFromDB(m BookModel) (*Dataset, error) {
	books, err := m.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	return NewDataset(books)
}

// RunMigrations applies every pending schema migration embedded in the binary.
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	return nil
}
