package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// JackpotRepository implements repository.Jackpot for PostgreSQL
type JackpotRepository struct {
	db *pgxpool.Pool
}

// NewJackpotRepository creates a new JackpotRepository
func NewJackpotRepository(db *pgxpool.Pool) *JackpotRepository {
	return &JackpotRepository{db: db}
}

// BeginJackpotTx starts a transaction and returns a JackpotTx
func (r *JackpotRepository) BeginJackpotTx(ctx context.Context) (repository.JackpotTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &jackpotTx{tx: tx}, nil
}

// GetConfig reads the config record
func (r *JackpotRepository) GetConfig(ctx context.Context) (*domain.Config, error) {
	return getConfig(ctx, r.db, false)
}

// GetRound reads a round and its deposits
func (r *JackpotRepository) GetRound(ctx context.Context, index uint64) (*domain.GameRound, error) {
	return getRound(ctx, r.db, index)
}

// ListRounds returns the newest rounds first
func (r *JackpotRepository) ListRounds(ctx context.Context, limit int) ([]*domain.GameRound, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT round_index FROM game_rounds ORDER BY round_index DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRounds, err)
	}
	indexes, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRounds, err)
	}

	out := make([]*domain.GameRound, 0, len(indexes))
	for _, idx := range indexes {
		round, err := getRound(ctx, r.db, fromBigint(idx))
		if err != nil {
			return nil, err
		}
		out = append(out, round)
	}
	return out, nil
}

// GetBalance reads an account balance; unknown accounts hold zero
func (r *JackpotRepository) GetBalance(ctx context.Context, account domain.Identity) (uint64, error) {
	return getBalance(ctx, r.db, account, false)
}

// ListTransfers returns the newest transfers touching account first
func (r *JackpotRepository) ListTransfers(ctx context.Context, account domain.Identity, limit int) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT transfer_id, COALESCE(from_account, ''), to_account, amount, created_at
		FROM ledger_transfers
		WHERE from_account = $1 OR to_account = $1
		ORDER BY seq DESC
		LIMIT $2`, string(account), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTransfers, err)
	}
	defer rows.Close()

	var out []domain.Transfer
	for rows.Next() {
		var (
			t        domain.Transfer
			from, to string
			amount   int64
		)
		if err := rows.Scan(&t.ID, &from, &to, &amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTransfers, err)
		}
		t.From, t.To, t.Amount = domain.Identity(from), domain.Identity(to), fromBigint(amount)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Ping checks database connectivity
func (r *JackpotRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// jackpotTx implements repository.JackpotTx interface
type jackpotTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *jackpotTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *jackpotTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetConfigForUpdate locks the config row for the rest of the transaction
func (t *jackpotTx) GetConfigForUpdate(ctx context.Context) (*domain.Config, error) {
	return getConfig(ctx, t.tx, true)
}

func (t *jackpotTx) InsertConfig(ctx context.Context, cfg *domain.Config) error {
	tag, err := t.tx.Exec(ctx, `
		INSERT INTO jackpot_config (id, admin, round_counter, is_completed, platform_fee, team_wallet, initialized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`,
		configRowID, string(cfg.Admin), int64(cfg.RoundCounter), cfg.IsCompleted,
		int32(cfg.PlatformFee), string(cfg.TeamWallet), cfg.InitializedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertConfig, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyInitialized
	}
	return nil
}

func (t *jackpotTx) UpdateConfig(ctx context.Context, cfg *domain.Config) error {
	counter, err := toBigint(cfg.RoundCounter)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE jackpot_config
		SET admin = $2, round_counter = $3, is_completed = $4, platform_fee = $5,
		    team_wallet = $6, updated_at = NOW()
		WHERE id = $1`,
		configRowID, string(cfg.Admin), counter, cfg.IsCompleted,
		int32(cfg.PlatformFee), string(cfg.TeamWallet))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateConfig, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInitialized
	}
	return nil
}

func (t *jackpotTx) GetRound(ctx context.Context, index uint64) (*domain.GameRound, error) {
	return getRound(ctx, t.tx, index)
}

// SaveRound upserts the round row and appends deposits not yet stored.
// Deposits are append-only, so stored positions are never rewritten.
func (t *jackpotTx) SaveRound(ctx context.Context, round *domain.GameRound) error {
	index, err := toBigint(round.Index)
	if err != nil {
		return err
	}
	amounts := []uint64{round.TotalAmount, round.WinnerIndex, round.WinnerDepositAmount, round.RewardAmount, round.FeeAmount, round.FeeSwept}
	stored := make([]int64, len(amounts))
	for i, a := range amounts {
		if stored[i], err = toBigint(a); err != nil {
			return err
		}
	}

	var winner *string
	if round.Winner != nil {
		w := string(*round.Winner)
		winner = &w
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO game_rounds (
			round_index, total_amount, winner, winner_index, winner_deposit_amount,
			started_at, ends_at, is_expired, rand, rand_source, rand_proof,
			reward_amount, fee_amount, reward_claimed, fee_swept, completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (round_index) DO UPDATE SET
			total_amount = EXCLUDED.total_amount,
			winner = EXCLUDED.winner,
			winner_index = EXCLUDED.winner_index,
			winner_deposit_amount = EXCLUDED.winner_deposit_amount,
			started_at = EXCLUDED.started_at,
			ends_at = EXCLUDED.ends_at,
			is_expired = EXCLUDED.is_expired,
			rand = EXCLUDED.rand,
			rand_source = EXCLUDED.rand_source,
			rand_proof = EXCLUDED.rand_proof,
			reward_amount = EXCLUDED.reward_amount,
			fee_amount = EXCLUDED.fee_amount,
			reward_claimed = EXCLUDED.reward_claimed,
			fee_swept = EXCLUDED.fee_swept,
			completed = EXCLUDED.completed,
			updated_at = NOW()`,
		index, stored[0], winner, stored[1], stored[2],
		round.StartedAt, round.EndsAt, round.IsExpired, strconv.FormatUint(round.Rand, 10),
		round.RandSource, round.RandProof,
		stored[3], stored[4], round.RewardClaimed, stored[5], round.Completed)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveRound, mapPgError(err))
	}

	var count int
	if err := t.tx.QueryRow(ctx, `SELECT COUNT(*) FROM round_deposits WHERE round_index = $1`, index).Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetDeposits, err)
	}
	if count > len(round.Deposits) {
		return fmt.Errorf("%w: round %d has %d stored deposits, %d in memory",
			domain.ErrLedgerInconsistent, round.Index, count, len(round.Deposits))
	}
	if count == len(round.Deposits) {
		return nil
	}

	pending := round.Deposits[count:]
	rows := make([][]any, 0, len(pending))
	for i, d := range pending {
		amount, err := toBigint(d.Amount)
		if err != nil {
			return err
		}
		rows = append(rows, []any{index, int32(count + i), string(d.Depositor), amount})
	}
	if _, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"round_deposits"},
		[]string{"round_index", "position", "depositor", "amount"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveDeposits, mapPgError(err))
	}
	return nil
}

func (t *jackpotTx) Balance(ctx context.Context, account domain.Identity) (uint64, error) {
	return getBalance(ctx, t.tx, account, false)
}

// Transfer locks both account rows in a fixed order, applies the move in Go
// and writes the new balances back
func (t *jackpotTx) Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error {
	accounts := []domain.Identity{from, to}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })
	balances := make(map[domain.Identity]uint64, 2)
	for _, acct := range accounts {
		bal, err := getBalance(ctx, t.tx, acct, true)
		if err != nil {
			return err
		}
		balances[acct] = bal
	}

	newFrom, newTo, err := domain.ApplyTransfer(balances[from], balances[to], amount, from == to)
	if err != nil {
		return err
	}
	if err := t.setBalance(ctx, from, newFrom); err != nil {
		return err
	}
	if err := t.setBalance(ctx, to, newTo); err != nil {
		return err
	}
	return t.recordTransfer(ctx, domain.NewTransfer(from, to, amount, time.Now()))
}

func (t *jackpotTx) Credit(ctx context.Context, account domain.Identity, amount uint64) (uint64, error) {
	bal, err := getBalance(ctx, t.tx, account, true)
	if err != nil {
		return 0, err
	}
	newBal, err := domain.ApplyCredit(bal, amount)
	if err != nil {
		return 0, err
	}
	if err := t.setBalance(ctx, account, newBal); err != nil {
		return 0, err
	}
	if err := t.recordTransfer(ctx, domain.NewTransfer("", account, amount, time.Now())); err != nil {
		return 0, err
	}
	return newBal, nil
}

func (t *jackpotTx) setBalance(ctx context.Context, account domain.Identity, balance uint64) error {
	stored, err := toBigint(balance)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO ledger_accounts (account, balance) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`,
		string(account), stored)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, mapPgError(err))
	}
	return nil
}

func (t *jackpotTx) recordTransfer(ctx context.Context, tr domain.Transfer) error {
	amount, err := toBigint(tr.Amount)
	if err != nil {
		return err
	}
	var from *string
	if !tr.From.IsZero() {
		f := string(tr.From)
		from = &f
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO ledger_transfers (transfer_id, from_account, to_account, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, from, string(tr.To), amount, tr.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordTransfer, mapPgError(err))
	}
	return nil
}

func getConfig(ctx context.Context, q querier, forUpdate bool) (*domain.Config, error) {
	sql := `
		SELECT admin, round_counter, is_completed, platform_fee, team_wallet, initialized_at
		FROM jackpot_config WHERE id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	var (
		cfg         domain.Config
		admin, team string
		counter     int64
		fee         int32
	)
	err := q.QueryRow(ctx, sql, configRowID).Scan(&admin, &counter, &cfg.IsCompleted, &fee, &team, &cfg.InitializedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetConfig, err)
	}
	cfg.Admin = domain.Identity(admin)
	cfg.TeamWallet = domain.Identity(team)
	cfg.RoundCounter = fromBigint(counter)
	cfg.PlatformFee = uint16(fee)
	return &cfg, nil
}

func getRound(ctx context.Context, q querier, index uint64) (*domain.GameRound, error) {
	idx, err := toBigint(index)
	if err != nil {
		return nil, domain.ErrRoundNotFound
	}

	var (
		round                       domain.GameRound
		total, winnerIdx, winnerAmt int64
		reward, fee, swept          int64
		winner                      *string
		randText                    string
	)
	err = q.QueryRow(ctx, `
		SELECT total_amount, winner, winner_index, winner_deposit_amount, started_at, ends_at,
		       is_expired, rand::text, rand_source, rand_proof, reward_amount, fee_amount,
		       reward_claimed, fee_swept, completed
		FROM game_rounds WHERE round_index = $1`, idx).Scan(
		&total, &winner, &winnerIdx, &winnerAmt, &round.StartedAt, &round.EndsAt,
		&round.IsExpired, &randText, &round.RandSource, &round.RandProof, &reward, &fee,
		&round.RewardClaimed, &swept, &round.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRound, err)
	}

	round.Index = index
	round.TotalAmount = fromBigint(total)
	round.WinnerIndex = fromBigint(winnerIdx)
	round.WinnerDepositAmount = fromBigint(winnerAmt)
	round.RewardAmount = fromBigint(reward)
	round.FeeAmount = fromBigint(fee)
	round.FeeSwept = fromBigint(swept)
	if winner != nil {
		w := domain.Identity(*winner)
		round.Winner = &w
	}
	if round.Rand, err = strconv.ParseUint(randText, 10, 64); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRandValue, err)
	}

	rows, err := q.Query(ctx, `
		SELECT depositor, amount FROM round_deposits
		WHERE round_index = $1 ORDER BY position`, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeposits, err)
	}
	defer rows.Close()

	round.Deposits = []domain.Deposit{}
	for rows.Next() {
		var (
			depositor string
			amount    int64
		)
		if err := rows.Scan(&depositor, &amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeposits, err)
		}
		round.Deposits = append(round.Deposits, domain.Deposit{Depositor: domain.Identity(depositor), Amount: fromBigint(amount)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeposits, err)
	}
	return &round, nil
}

func getBalance(ctx context.Context, q querier, account domain.Identity, forUpdate bool) (uint64, error) {
	sql := `SELECT balance FROM ledger_accounts WHERE account = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	var bal int64
	if err := q.QueryRow(ctx, sql, string(account)).Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return fromBigint(bal), nil
}
