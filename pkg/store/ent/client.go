// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mnemolabs/mnemo/pkg/store/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MemoryRecord is the client for interacting with the MemoryRecord builders.
	MemoryRecord *MemoryRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MemoryRecord = NewMemoryRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		MemoryRecord: NewMemoryRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		MemoryRecord: NewMemoryRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MemoryRecord.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.MemoryRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MemoryRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MemoryRecordMutation:
		return c.MemoryRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MemoryRecordClient is a client for the MemoryRecord schema.
type MemoryRecordClient struct {
	config
}

// NewMemoryRecordClient returns a client for the MemoryRecord from the given config.
func NewMemoryRecordClient(c config) *MemoryRecordClient {
	return &MemoryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryrecord.Hooks(f(g(h())))`.
func (c *MemoryRecordClient) Use(hooks ...Hook) {
	c.hooks.MemoryRecord = append(c.hooks.MemoryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryrecord.Intercept(f(g(h())))`.
func (c *MemoryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryRecord = append(c.inters.MemoryRecord, interceptors...)
}

// Create returns a builder for creating a MemoryRecord entity.
func (c *MemoryRecordClient) Create() *MemoryRecordCreate {
	mutation := newMemoryRecordMutation(c.config, OpCreate)
	return &MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryRecord entities.
func (c *MemoryRecordClient) CreateBulk(builders ...*MemoryRecordCreate) *MemoryRecordCreateBulk {
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryRecordClient) MapCreateBulk(slice any, setFunc func(*MemoryRecordCreate, int)) *MemoryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryRecordCreateBulk{err: fmt.Errorf("calling to MemoryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryRecord.
func (c *MemoryRecordClient) Update() *MemoryRecordUpdate {
	mutation := newMemoryRecordMutation(c.config, OpUpdate)
	return &MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryRecordClient) UpdateOne(_m *MemoryRecord) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecord(_m))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryRecordClient) UpdateOneID(id int) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecordID(id))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryRecord.
func (c *MemoryRecordClient) Delete() *MemoryRecordDelete {
	mutation := newMemoryRecordMutation(c.config, OpDelete)
	return &MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryRecordClient) DeleteOne(_m *MemoryRecord) *MemoryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryRecordClient) DeleteOneID(id int) *MemoryRecordDeleteOne {
	builder := c.Delete().Where(memoryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryRecordDeleteOne{builder}
}

// Query returns a query builder for MemoryRecord.
func (c *MemoryRecordClient) Query() *MemoryRecordQuery {
	return &MemoryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryRecord entity by its id.
func (c *MemoryRecordClient) Get(ctx context.Context, id int) (*MemoryRecord, error) {
	return c.Query().Where(memoryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryRecordClient) GetX(ctx context.Context, id int) *MemoryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBase queries the base edge of a MemoryRecord.
func (c *MemoryRecordClient) QueryBase(_m *MemoryRecord) *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryrecord.Table, memoryrecord.FieldID, id),
			sqlgraph.To(memoryrecord.Table, memoryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, memoryrecord.BaseTable, memoryrecord.BaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuccessors queries the successors edge of a MemoryRecord.
func (c *MemoryRecordClient) QuerySuccessors(_m *MemoryRecord) *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryrecord.Table, memoryrecord.FieldID, id),
			sqlgraph.To(memoryrecord.Table, memoryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, memoryrecord.SuccessorsTable, memoryrecord.SuccessorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryRecordClient) Hooks() []Hook {
	return c.hooks.MemoryRecord
}

// Interceptors returns the client interceptors.
func (c *MemoryRecordClient) Interceptors() []Interceptor {
	return c.inters.MemoryRecord
}

func (c *MemoryRecordClient) mutate(ctx context.Context, m *MemoryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MemoryRecord []ent.Hook
	}
	inters struct {
		MemoryRecord []ent.Interceptor
	}
)
