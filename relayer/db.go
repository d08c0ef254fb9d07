package relayer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/minio/sha256-simd"
	xdr "github.com/nullstyle/go-xdr/xdr3"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/zkmesh/relay/shared"
)

var ErrNotJournaled = leveldb.ErrNotFound

// SubmissionRecord is one journaled submission. The payload itself is
// not persisted, only its digest; the journal exists so an operator can
// tie a job id back to the account it was billed to.
type SubmissionRecord struct {
	JobID     string
	Account   []byte
	Digest    []byte
	CreatedAt int64
}

type journal struct {
	db *leveldb.DB
}

func openJournal(path string) (*journal, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal @ %s: %w", path, err)
	}
	return &journal{db: db}, nil
}

func (j *journal) Close() error {
	return j.db.Close()
}

func (j *journal) append(jobID string, account shared.AccountID, proof []byte) error {
	digest := sha256.Sum256(proof)
	record := SubmissionRecord{
		JobID:     jobID,
		Account:   account.Bytes(),
		Digest:    digest[:],
		CreatedAt: time.Now().Unix(),
	}

	var dataBuf bytes.Buffer
	if _, err := xdr.Marshal(&dataBuf, record); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}
	if err := j.db.Put([]byte(jobID), dataBuf.Bytes(), &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("storing submission record: %w", err)
	}
	return nil
}

func (j *journal) get(jobID string) (*SubmissionRecord, error) {
	data, err := j.db.Get([]byte(jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("get record for %s: %w", jobID, err)
	}
	record := &SubmissionRecord{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), record); err != nil {
		return nil, fmt.Errorf("failed to deserialize: %v", err)
	}
	return record, nil
}

// list returns up to limit records, newest first. A non-positive limit
// returns everything.
func (j *journal) list(limit int) ([]SubmissionRecord, error) {
	var records []SubmissionRecord
	iter := j.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		record := SubmissionRecord{}
		if _, err := xdr.Unmarshal(bytes.NewReader(iter.Value()), &record); err != nil {
			return nil, fmt.Errorf("failed to deserialize record %s: %v", iter.Key(), err)
		}
		records = append(records, record)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterating journal: %w", err)
	}

	sort.Slice(records, func(i, k int) bool { return records[i].CreatedAt > records[k].CreatedAt })
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
