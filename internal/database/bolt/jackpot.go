// Package bolt implements repository.Jackpot on an embedded bbolt file.
// bbolt allows one read-write transaction at a time, which gives the
// serialization the jackpot lifecycle needs without extra locking.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

const (
	configBucket    = "config"
	roundsBucket    = "rounds"
	balancesBucket  = "balances"
	transfersBucket = "transfers"
	eventsBucket    = "events"
)

var configKey = []byte("singleton")

// JackpotRepository implements repository.Jackpot on bbolt
type JackpotRepository struct {
	db  *bbolt.DB
	now func() time.Time
}

// Open opens (or creates) the store at path
func Open(path string) (*JackpotRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	repo := &JackpotRepository{db: db, now: time.Now}
	if err := repo.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the underlying database
func (r *JackpotRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *JackpotRepository) ensureBuckets() error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{configBucket, roundsBucket, balancesBucket, transfersBucket, eventsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// BeginJackpotTx starts the single read-write transaction
func (r *JackpotRepository) BeginJackpotTx(ctx context.Context) (repository.JackpotTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := r.db.Begin(true)
	if err != nil {
		return nil, fmt.Errorf("begin storage tx: %w", err)
	}
	return &jackpotTx{tx: tx, now: r.now}, nil
}

// GetConfig reads the config record
func (r *JackpotRepository) GetConfig(ctx context.Context) (*domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var cfg *domain.Config
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		cfg, err = readConfig(tx)
		return err
	})
	return cfg, err
}

// GetRound reads one round
func (r *JackpotRepository) GetRound(ctx context.Context, index uint64) (*domain.GameRound, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var round *domain.GameRound
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		round, err = readRound(tx, index)
		return err
	})
	return round, err
}

// ListRounds returns the newest rounds first
func (r *JackpotRepository) ListRounds(ctx context.Context, limit int) ([]*domain.GameRound, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*domain.GameRound
	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(roundsBucket)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var round domain.GameRound
			if err := json.Unmarshal(v, &round); err != nil {
				return fmt.Errorf("unmarshal round: %w", err)
			}
			out = append(out, &round)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// GetBalance reads an account balance
func (r *JackpotRepository) GetBalance(ctx context.Context, account domain.Identity) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var bal uint64
	err := r.db.View(func(tx *bbolt.Tx) error {
		bal = readBalance(tx, account)
		return nil
	})
	return bal, err
}

// ListTransfers returns the newest transfers touching account first
func (r *JackpotRepository) ListTransfers(ctx context.Context, account domain.Identity, limit int) ([]domain.Transfer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.Transfer
	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(transfersBucket)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var t domain.Transfer
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("unmarshal transfer: %w", err)
			}
			if t.From != account && t.To != account {
				continue
			}
			out = append(out, t)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// Ping checks the database file is still open
func (r *JackpotRepository) Ping(ctx context.Context) error {
	return r.db.View(func(tx *bbolt.Tx) error { return ctx.Err() })
}

type jackpotTx struct {
	tx  *bbolt.Tx
	now func() time.Time
}

func (t *jackpotTx) Commit(_ context.Context) error {
	return mapTxErr(t.tx.Commit())
}

func (t *jackpotTx) Rollback(_ context.Context) error {
	return mapTxErr(t.tx.Rollback())
}

func mapTxErr(err error) error {
	if errors.Is(err, bbolt.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}

func (t *jackpotTx) GetConfigForUpdate(_ context.Context) (*domain.Config, error) {
	return readConfig(t.tx)
}

func (t *jackpotTx) InsertConfig(_ context.Context, cfg *domain.Config) error {
	if t.tx.Bucket([]byte(configBucket)).Get(configKey) != nil {
		return domain.ErrAlreadyInitialized
	}
	return writeConfig(t.tx, cfg)
}

func (t *jackpotTx) UpdateConfig(_ context.Context, cfg *domain.Config) error {
	if t.tx.Bucket([]byte(configBucket)).Get(configKey) == nil {
		return domain.ErrNotInitialized
	}
	return writeConfig(t.tx, cfg)
}

func (t *jackpotTx) GetRound(_ context.Context, index uint64) (*domain.GameRound, error) {
	return readRound(t.tx, index)
}

func (t *jackpotTx) SaveRound(_ context.Context, round *domain.GameRound) error {
	payload, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("marshal round: %w", err)
	}
	return t.tx.Bucket([]byte(roundsBucket)).Put(uint64Key(round.Index), payload)
}

func (t *jackpotTx) Balance(_ context.Context, account domain.Identity) (uint64, error) {
	return readBalance(t.tx, account), nil
}

func (t *jackpotTx) Transfer(_ context.Context, from, to domain.Identity, amount uint64) error {
	newFrom, newTo, err := domain.ApplyTransfer(readBalance(t.tx, from), readBalance(t.tx, to), amount, from == to)
	if err != nil {
		return err
	}
	if err := writeBalance(t.tx, from, newFrom); err != nil {
		return err
	}
	if err := writeBalance(t.tx, to, newTo); err != nil {
		return err
	}
	return t.recordTransfer(domain.NewTransfer(from, to, amount, t.now()))
}

func (t *jackpotTx) Credit(_ context.Context, account domain.Identity, amount uint64) (uint64, error) {
	bal, err := domain.ApplyCredit(readBalance(t.tx, account), amount)
	if err != nil {
		return 0, err
	}
	if err := writeBalance(t.tx, account, bal); err != nil {
		return 0, err
	}
	if err := t.recordTransfer(domain.NewTransfer("", account, amount, t.now())); err != nil {
		return 0, err
	}
	return bal, nil
}

func (t *jackpotTx) recordTransfer(tr domain.Transfer) error {
	bucket := t.tx.Bucket([]byte(transfersBucket))
	seq, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("next transfer sequence: %w", err)
	}
	payload, err := json.Marshal(tr)
	if err != nil {
		return fmt.Errorf("marshal transfer: %w", err)
	}
	return bucket.Put(uint64Key(seq), payload)
}

func readConfig(tx *bbolt.Tx) (*domain.Config, error) {
	payload := tx.Bucket([]byte(configBucket)).Get(configKey)
	if payload == nil {
		return nil, domain.ErrNotInitialized
	}
	var cfg domain.Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func writeConfig(tx *bbolt.Tx, cfg *domain.Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return tx.Bucket([]byte(configBucket)).Put(configKey, payload)
}

func readRound(tx *bbolt.Tx, index uint64) (*domain.GameRound, error) {
	payload := tx.Bucket([]byte(roundsBucket)).Get(uint64Key(index))
	if payload == nil {
		return nil, domain.ErrRoundNotFound
	}
	var round domain.GameRound
	if err := json.Unmarshal(payload, &round); err != nil {
		return nil, fmt.Errorf("unmarshal round: %w", err)
	}
	if round.Deposits == nil {
		round.Deposits = []domain.Deposit{}
	}
	return &round, nil
}

func readBalance(tx *bbolt.Tx, account domain.Identity) uint64 {
	v := tx.Bucket([]byte(balancesBucket)).Get([]byte(account))
	if len(v) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func writeBalance(tx *bbolt.Tx, account domain.Identity, balance uint64) error {
	return tx.Bucket([]byte(balancesBucket)).Put([]byte(account), uint64Key(balance))
}

// uint64Key encodes big-endian so cursor order matches numeric order
func uint64Key(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
