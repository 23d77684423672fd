package userdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// hourMillis is the weight one additional use adds to a record's score.
const hourMillis int64 = 3_600_000

// UsageRecord tracks how often and how recently a skill was launched.
type UsageRecord struct {
	Name     string `json:"name"`
	LastUsed int64  `json:"lastUsed"` // unix milliseconds
	Count    int    `json:"count"`
}

// Score ranks a record: last use time plus one hour per recorded use.
func (r UsageRecord) Score() int64 {
	return r.LastUsed + int64(r.Count)*hourMillis
}

// UsageData is the on-disk usage document.
type UsageData struct {
	Usage []UsageRecord `json:"usage"`
}

// LoadUsage reads the usage file. A missing or unparsable file yields empty
// data; usage history is never worth failing a command over.
func LoadUsage(path string) *UsageData {
	data, err := os.ReadFile(path)
	if err != nil {
		return &UsageData{}
	}
	var u UsageData
	if err := json.Unmarshal(data, &u); err != nil {
		return &UsageData{}
	}
	return &u
}

// SaveUsage writes the usage document, creating the parent directory.
func SaveUsage(path string, u *UsageData) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding usage data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermNormal); err != nil {
		return fmt.Errorf("creating usage directory: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermNormal); err != nil {
		return fmt.Errorf("writing usage file %s: %w", path, err)
	}
	return nil
}

// Record notes one launch of the named skill at now.
func (u *UsageData) Record(name string, now time.Time) {
	ms := now.UnixMilli()
	for i := range u.Usage {
		if u.Usage[i].Name == name {
			u.Usage[i].LastUsed = ms
			u.Usage[i].Count++
			return
		}
	}
	u.Usage = append(u.Usage, UsageRecord{Name: name, LastUsed: ms, Count: 1})
}

// Lookup returns the record for name, if any.
func (u *UsageData) Lookup(name string) (UsageRecord, bool) {
	for _, r := range u.Usage {
		if r.Name == name {
			return r, true
		}
	}
	return UsageRecord{}, false
}
