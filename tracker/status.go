package tracker

import (
	"bufio"
	"encoding/json"
	"os"
	"time"

	"github.com/otc-cli/otc/config"
)

// StatusFile is the snapshot the watch dashboard writes next to the database
// so other invocations can answer while the database is locked.
type StatusFile struct {
	State             string    `json:"state"`
	Worked            string    `json:"worked"`
	Remaining         string    `json:"remaining"`
	Target            string    `json:"target"`
	EstimatedCheckout string    `json:"estimated_checkout"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WriteStatusFile refreshes the status snapshot on disk.
func (t *Tracker) WriteStatusFile() (err error) {
	status := t.Status()

	s := StatusFile{
		State:             status.State,
		Worked:            status.Worked,
		Remaining:         status.Remaining,
		Target:            status.Target,
		EstimatedCheckout: status.EstimatedCheckout,
		UpdatedAt:         t.clock.Now(),
	}

	statusFile, err := os.Create(config.StatusFilePath())
	if err != nil {
		return err
	}

	defer func() {
		if ferr := statusFile.Close(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReadStatusFile loads the last snapshot written by a running dashboard.
func ReadStatusFile() (*StatusFile, error) {
	fileBytes, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		return nil, err
	}

	var s StatusFile

	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// RemoveStatusFile deletes the snapshot; called when the dashboard exits.
func RemoveStatusFile() {
	_ = os.Remove(config.StatusFilePath())
}
