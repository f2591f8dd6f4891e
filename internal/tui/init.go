package tui

import (
	"errors"

	"github.com/javiermolinar/timewheel/internal/db"
	"github.com/javiermolinar/timewheel/internal/selection"
)

func openRepo(dbPath string) (selection.Repository, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	repo, err := db.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
