package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/mpdwaves/internal/db"
)

// SessionState is what the UI restores on the next start against the same daemon.
type SessionState struct {
	Daemon    string // daemon address the state belongs to
	Tab       string
	Selected  *int // nil when nothing was selected
	UpdatedAt time.Time
}

func getSession(db *sql.DB, daemon string) (*SessionState, error) {
	row := db.QueryRow(`
		SELECT tab, selected_index, updated_at
		FROM session_state WHERE daemon = ?
	`, daemon)

	var tab sql.NullString
	var selected sql.NullInt64
	var updated int64

	err := row.Scan(&tab, &selected, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &SessionState{
		Daemon:    daemon,
		Tab:       dbutil.NullStringValue(tab),
		Selected:  dbutil.NullIntToPtr(selected),
		UpdatedAt: time.Unix(updated, 0),
	}, nil
}

func saveSession(db *sql.DB, state SessionState) error {
	updated := state.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO session_state (daemon, tab, selected_index, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(daemon) DO UPDATE SET
			tab = excluded.tab,
			selected_index = excluded.selected_index,
			updated_at = excluded.updated_at
	`, state.Daemon, state.Tab, dbutil.PtrToNullInt(state.Selected), updated.Unix())
	return err
}
