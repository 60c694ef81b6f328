package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Traverser25/GetCoditer/internal/models"
)

type seenEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// CommentCache remembers which megathread comments were already ingested,
// so a re-run over the same (still growing) thread only inserts new ones.
type CommentCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

// Megathreads turn over monthly; 90 days comfortably outlives any thread
// still being re-scanned.
const retentionMs = int64(90 * 24 * 60 * 60 * 1000)

// Key derives a stable identity for one comment. The scraped payload
// carries no comment ID, so author plus body hash stands in.
func Key(c models.RawComment) string {
	sum := sha256.Sum256([]byte(c.Author + "\x00" + c.Body))
	return hex.EncodeToString(sum[:8])
}

// NewCommentCache creates or loads the cache under cacheDir.
func NewCommentCache(cacheDir string) *CommentCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &CommentCache{
		filePath: filepath.Join(cacheDir, "seen_comments.json"),
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen reports whether a comment key was already ingested.
func (cc *CommentCache) IsSeen(key string) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, exists := cc.seen[key]
	return exists
}

// Add marks keys as ingested and persists the cache when anything changed.
func (cc *CommentCache) Add(keys []string) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, key := range keys {
		if _, exists := cc.seen[key]; !exists {
			cc.seen[key] = now
			changed = true
		}
	}

	if changed {
		cc.save()
	}
}

// load reads the cache from disk, dropping entries past retention.
func (cc *CommentCache) load() {
	data, err := os.ReadFile(cc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_comments.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_comments.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - retentionMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			cc.seen[e.Key] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen comments (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk.
func (cc *CommentCache) save() {
	entries := make([]seenEntry, 0, len(cc.seen))
	for key, ts := range cc.seen {
		entries = append(entries, seenEntry{Key: key, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen comments: %v", err)
		return
	}
	if err := os.WriteFile(cc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_comments.json: %v", err)
	}
}
