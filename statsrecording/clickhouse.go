package statsrecording

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/tebeka/atexit"
)

// ClickHouseRecorder batches dispatch statistics into a ClickHouse server
// over the native protocol. It understands the collector's four row types
// and appends them without reflection.
type ClickHouseRecorder struct {
	conn      driver.Conn
	mu        sync.Mutex
	batchSize int

	runInfoBatch   []RunInfoRow
	dispatchBatch  []DispatchRow
	tickBatch      []TickRow
	schedulerBatch []SchedulerRow

	tables     map[string]chTableType
	entryCount int
}

type chTableType int

const (
	chTableRunInfo chTableType = iota
	chTableDispatch
	chTableTick
	chTableScheduler
)

// ClickHouseOptions configures the server connection.
type ClickHouseOptions struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string

	// BatchSize is the buffered row count that triggers a flush. Zero means
	// the default of 100000.
	BatchSize int
}

// NewClickHouseRecorder connects to a ClickHouse server and returns a
// recorder bound to it. Buffered rows are flushed at process exit.
func NewClickHouseRecorder(opts ClickHouseOptions) *ClickHouseRecorder {
	if opts.BatchSize == 0 {
		opts.BatchSize = 100000
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", opts.Host, opts.Port)},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.Username,
			Password: opts.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      time.Second * 30,
		MaxOpenConns:     5,
		MaxIdleConns:     5,
		ConnMaxLifetime:  time.Hour,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
		BlockBufferSize:  10,
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect to ClickHouse: %w", err))
	}

	if err := conn.Ping(context.Background()); err != nil {
		panic(fmt.Errorf("failed to ping ClickHouse: %w", err))
	}

	r := &ClickHouseRecorder{
		conn:      conn,
		batchSize: opts.BatchSize,
		tables:    make(map[string]chTableType),
	}

	atexit.Register(func() { r.Flush() })

	return r
}

// CreateTable creates a MergeTree table for one of the collector's row
// types. The sample entry selects the schema.
func (r *ClickHouseRecorder) CreateTable(tableName string, sampleEntry any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var createSQL string
	var tType chTableType

	switch sampleEntry.(type) {
	case RunInfoRow:
		tType = chTableRunInfo
		createSQL = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				Property String,
				Value String
			) ENGINE = MergeTree()
			ORDER BY Property
		`, tableName)

	case DispatchRow:
		tType = chTableDispatch
		createSQL = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				Tick UInt64,
				EventType String,
				Count UInt64,
				TotalNS Int64,
				MinNS Int64,
				MaxNS Int64,
				AvgNS Int64
			) ENGINE = MergeTree()
			ORDER BY (Tick, EventType)
		`, tableName)

	case TickRow:
		tType = chTableTick
		createSQL = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				Tick UInt64,
				DurationNS Int64,
				Pending Int64,
				Dropped UInt64
			) ENGINE = MergeTree()
			ORDER BY Tick
		`, tableName)

	case SchedulerRow:
		tType = chTableScheduler
		createSQL = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				Tick UInt64,
				Submitted UInt64,
				Completed UInt64,
				Panicked UInt64,
				DepthCritical Int64,
				DepthHigh Int64,
				DepthNormal Int64,
				DepthLow Int64,
				DepthIdle Int64
			) ENGINE = MergeTree()
			ORDER BY Tick
		`, tableName)

	default:
		panic(fmt.Sprintf("unsupported entry type for ClickHouse: %T", sampleEntry))
	}

	err := r.conn.Exec(context.Background(), createSQL)
	if err != nil {
		panic(fmt.Errorf("failed to create table %s: %w", tableName, err))
	}

	r.tables[tableName] = tType
}

// InsertData buffers one row for a created table.
func (r *ClickHouseRecorder) InsertData(tableName string, entry any) {
	r.mu.Lock()

	tType, exists := r.tables[tableName]
	if !exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	switch tType {
	case chTableRunInfo:
		r.runInfoBatch = append(r.runInfoBatch, entry.(RunInfoRow))
	case chTableDispatch:
		r.dispatchBatch = append(r.dispatchBatch, entry.(DispatchRow))
	case chTableTick:
		r.tickBatch = append(r.tickBatch, entry.(TickRow))
	case chTableScheduler:
		r.schedulerBatch = append(r.schedulerBatch, entry.(SchedulerRow))
	}

	r.entryCount++
	if r.entryCount >= r.batchSize {
		r.mu.Unlock()
		r.Flush()
		return
	}

	r.mu.Unlock()
}

// ListTables returns the names of all created tables.
func (r *ClickHouseRecorder) ListTables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}
	return tables
}

// Flush sends every buffered row as bulk inserts.
func (r *ClickHouseRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entryCount == 0 {
		return
	}

	ctx := context.Background()
	for tableName, tType := range r.tables {
		switch tType {
		case chTableRunInfo:
			if len(r.runInfoBatch) > 0 {
				r.flushRunInfo(ctx, tableName)
			}
		case chTableDispatch:
			if len(r.dispatchBatch) > 0 {
				r.flushDispatch(ctx, tableName)
			}
		case chTableTick:
			if len(r.tickBatch) > 0 {
				r.flushTicks(ctx, tableName)
			}
		case chTableScheduler:
			if len(r.schedulerBatch) > 0 {
				r.flushScheduler(ctx, tableName)
			}
		}
	}

	r.entryCount = 0
}

// Close flushes and closes the connection.
func (r *ClickHouseRecorder) Close() error {
	r.Flush()
	return r.conn.Close()
}

func (r *ClickHouseRecorder) flushRunInfo(ctx context.Context, tableName string) {
	batch := r.mustPrepareBatch(ctx, tableName)

	for _, e := range r.runInfoBatch {
		r.mustAppend(batch.Append(e.Property, e.Value))
	}

	r.mustSend(batch)
	r.runInfoBatch = r.runInfoBatch[:0]
}

func (r *ClickHouseRecorder) flushDispatch(ctx context.Context, tableName string) {
	batch := r.mustPrepareBatch(ctx, tableName)

	for _, e := range r.dispatchBatch {
		r.mustAppend(batch.Append(
			e.Tick,
			e.EventType,
			e.Count,
			e.TotalNS,
			e.MinNS,
			e.MaxNS,
			e.AvgNS,
		))
	}

	r.mustSend(batch)
	r.dispatchBatch = r.dispatchBatch[:0]
}

func (r *ClickHouseRecorder) flushTicks(ctx context.Context, tableName string) {
	batch := r.mustPrepareBatch(ctx, tableName)

	for _, e := range r.tickBatch {
		r.mustAppend(batch.Append(
			e.Tick,
			e.DurationNS,
			int64(e.Pending),
			e.Dropped,
		))
	}

	r.mustSend(batch)
	r.tickBatch = r.tickBatch[:0]
}

func (r *ClickHouseRecorder) flushScheduler(ctx context.Context, tableName string) {
	batch := r.mustPrepareBatch(ctx, tableName)

	for _, e := range r.schedulerBatch {
		r.mustAppend(batch.Append(
			e.Tick,
			e.Submitted,
			e.Completed,
			e.Panicked,
			int64(e.DepthCritical),
			int64(e.DepthHigh),
			int64(e.DepthNormal),
			int64(e.DepthLow),
			int64(e.DepthIdle),
		))
	}

	r.mustSend(batch)
	r.schedulerBatch = r.schedulerBatch[:0]
}

func (r *ClickHouseRecorder) mustPrepareBatch(
	ctx context.Context,
	tableName string,
) driver.Batch {
	batch, err := r.conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s", tableName))
	if err != nil {
		panic(fmt.Errorf("failed to prepare batch for %s: %w", tableName, err))
	}
	return batch
}

func (r *ClickHouseRecorder) mustAppend(err error) {
	if err != nil {
		panic(fmt.Errorf("failed to append to batch: %w", err))
	}
}

func (r *ClickHouseRecorder) mustSend(batch driver.Batch) {
	if err := batch.Send(); err != nil {
		panic(fmt.Errorf("failed to send batch: %w", err))
	}
}
