package chainbench

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/errorkit"
)

var runsBucket = []byte("runs")

// Run is a finished benchmark run as it is kept in the History.
type Run struct {
	ID        string
	StartedAt time.Time
	Config    Config
	Results   []Result
}

// Fastest returns the result with the highest throughput.
func (run Run) Fastest() (Result, bool) {
	if len(run.Results) == 0 {
		return Result{}, false
	}
	best := run.Results[0]
	for _, r := range run.Results[1:] {
		if best.Throughput < r.Throughput {
			best = r
		}
	}
	return best, true
}

// History keeps benchmark runs in a local bolt database file.
type History struct {
	DB *bolt.DB
}

func OpenHistory(path string) (*History, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &History{DB: db}, nil
}

// Close the History database and release the file lock
func (h *History) Close() error {
	return h.DB.Close()
}

// Save appends the run to the history.
// A run without an ID gets a new unique one.
func (h *History) Save(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewV4().String()
	}
	value, err := h.encode(run)
	if err != nil {
		return err
	}
	return h.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(runsBucket)
		if err != nil {
			return err
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(h.uintToBytes(seq), value)
	})
}

// List returns every stored run, the most recently saved one last.
func (h *History) List() ([]Run, error) {
	var runs []Run
	err := h.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(runsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, data []byte) error {
			var run Run
			if err := h.decode(data, &run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	return runs, err
}

const ErrRunNotFound errorkit.Error = "benchmark run not found"

// Lookup finds a stored run by its ID.
func (h *History) Lookup(id string) (Run, error) {
	runs, err := h.List()
	if err != nil {
		return Run{}, err
	}
	for _, run := range runs {
		if run.ID == id {
			return run, nil
		}
	}
	return Run{}, ErrRunNotFound.F("%s", id)
}

// uintToBytes returns an 8-byte big endian representation of v.
func (h *History) uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func (h *History) encode(run *Run) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(run); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *History) decode(data []byte, ptr *Run) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(ptr)
}
