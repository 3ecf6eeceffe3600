// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
	"github.com/mnemolabs/mnemo/pkg/store/ent/predicate"
)

// MemoryRecordQuery is the builder for querying MemoryRecord entities.
type MemoryRecordQuery struct {
	config
	ctx            *QueryContext
	order          []memoryrecord.OrderOption
	inters         []Interceptor
	predicates     []predicate.MemoryRecord
	withBase       *MemoryRecordQuery
	withSuccessors *MemoryRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MemoryRecordQuery builder.
func (_q *MemoryRecordQuery) Where(ps ...predicate.MemoryRecord) *MemoryRecordQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MemoryRecordQuery) Limit(limit int) *MemoryRecordQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MemoryRecordQuery) Offset(offset int) *MemoryRecordQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MemoryRecordQuery) Unique(unique bool) *MemoryRecordQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MemoryRecordQuery) Order(o ...memoryrecord.OrderOption) *MemoryRecordQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBase chains the current query on the "base" edge.
func (_q *MemoryRecordQuery) QueryBase() *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryrecord.Table, memoryrecord.FieldID, selector),
			sqlgraph.To(memoryrecord.Table, memoryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, memoryrecord.BaseTable, memoryrecord.BaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuccessors chains the current query on the "successors" edge.
func (_q *MemoryRecordQuery) QuerySuccessors() *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryrecord.Table, memoryrecord.FieldID, selector),
			sqlgraph.To(memoryrecord.Table, memoryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, memoryrecord.SuccessorsTable, memoryrecord.SuccessorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MemoryRecord entity from the query.
// Returns a *NotFoundError when no MemoryRecord was found.
func (_q *MemoryRecordQuery) First(ctx context.Context) (*MemoryRecord, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{memoryrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MemoryRecordQuery) FirstX(ctx context.Context) *MemoryRecord {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MemoryRecord ID from the query.
// Returns a *NotFoundError when no MemoryRecord ID was found.
func (_q *MemoryRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{memoryrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MemoryRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MemoryRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MemoryRecord entity is found.
// Returns a *NotFoundError when no MemoryRecord entities are found.
func (_q *MemoryRecordQuery) Only(ctx context.Context) (*MemoryRecord, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{memoryrecord.Label}
	default:
		return nil, &NotSingularError{memoryrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MemoryRecordQuery) OnlyX(ctx context.Context) *MemoryRecord {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MemoryRecord ID in the query.
// Returns a *NotSingularError when more than one MemoryRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MemoryRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{memoryrecord.Label}
	default:
		err = &NotSingularError{memoryrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MemoryRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MemoryRecords.
func (_q *MemoryRecordQuery) All(ctx context.Context) ([]*MemoryRecord, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MemoryRecord, *MemoryRecordQuery]()
	return withInterceptors[[]*MemoryRecord](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MemoryRecordQuery) AllX(ctx context.Context) []*MemoryRecord {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MemoryRecord IDs.
func (_q *MemoryRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(memoryrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MemoryRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MemoryRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MemoryRecordQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MemoryRecordQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MemoryRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MemoryRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MemoryRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MemoryRecordQuery) Clone() *MemoryRecordQuery {
	if _q == nil {
		return nil
	}
	return &MemoryRecordQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]memoryrecord.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.MemoryRecord{}, _q.predicates...),
		withBase:       _q.withBase.Clone(),
		withSuccessors: _q.withSuccessors.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBase tells the query-builder to eager-load the nodes that are connected to
// the "base" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MemoryRecordQuery) WithBase(opts ...func(*MemoryRecordQuery)) *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBase = query
	return _q
}

// WithSuccessors tells the query-builder to eager-load the nodes that are connected to
// the "successors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MemoryRecordQuery) WithSuccessors(opts ...func(*MemoryRecordQuery)) *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuccessors = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ConversationID string `json:"conversation_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MemoryRecord.Query().
//		GroupBy(memoryrecord.FieldConversationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MemoryRecordQuery) GroupBy(field string, fields ...string) *MemoryRecordGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MemoryRecordGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = memoryrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ConversationID string `json:"conversation_id,omitempty"`
//	}
//
//	client.MemoryRecord.Query().
//		Select(memoryrecord.FieldConversationID).
//		Scan(ctx, &v)
func (_q *MemoryRecordQuery) Select(fields ...string) *MemoryRecordSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MemoryRecordSelect{MemoryRecordQuery: _q}
	sbuild.label = memoryrecord.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MemoryRecordSelect configured with the given aggregations.
func (_q *MemoryRecordQuery) Aggregate(fns ...AggregateFunc) *MemoryRecordSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MemoryRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !memoryrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MemoryRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MemoryRecord, error) {
	var (
		nodes       = []*MemoryRecord{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBase != nil,
			_q.withSuccessors != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MemoryRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MemoryRecord{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withBase; query != nil {
		if err := _q.loadBase(ctx, query, nodes, nil,
			func(n *MemoryRecord, e *MemoryRecord) { n.Edges.Base = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuccessors; query != nil {
		if err := _q.loadSuccessors(ctx, query, nodes,
			func(n *MemoryRecord) { n.Edges.Successors = []*MemoryRecord{} },
			func(n *MemoryRecord, e *MemoryRecord) { n.Edges.Successors = append(n.Edges.Successors, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MemoryRecordQuery) loadBase(ctx context.Context, query *MemoryRecordQuery, nodes []*MemoryRecord, init func(*MemoryRecord), assign func(*MemoryRecord, *MemoryRecord)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MemoryRecord)
	for i := range nodes {
		if nodes[i].BaseMemoryID == nil {
			continue
		}
		fk := *nodes[i].BaseMemoryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(memoryrecord.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "base_memory_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MemoryRecordQuery) loadSuccessors(ctx context.Context, query *MemoryRecordQuery, nodes []*MemoryRecord, init func(*MemoryRecord), assign func(*MemoryRecord, *MemoryRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MemoryRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(memoryrecord.FieldBaseMemoryID)
	}
	query.Where(predicate.MemoryRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(memoryrecord.SuccessorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BaseMemoryID
		if fk == nil {
			return fmt.Errorf(`foreign-key "base_memory_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "base_memory_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MemoryRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MemoryRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(memoryrecord.Table, memoryrecord.Columns, sqlgraph.NewFieldSpec(memoryrecord.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryrecord.FieldID)
		for i := range fields {
			if fields[i] != memoryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBase != nil {
			_spec.Node.AddColumnOnce(memoryrecord.FieldBaseMemoryID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MemoryRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(memoryrecord.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = memoryrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MemoryRecordGroupBy is the group-by builder for MemoryRecord entities.
type MemoryRecordGroupBy struct {
	selector
	build *MemoryRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MemoryRecordGroupBy) Aggregate(fns ...AggregateFunc) *MemoryRecordGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MemoryRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MemoryRecordQuery, *MemoryRecordGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MemoryRecordGroupBy) sqlScan(ctx context.Context, root *MemoryRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MemoryRecordSelect is the builder for selecting fields of MemoryRecord entities.
type MemoryRecordSelect struct {
	*MemoryRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MemoryRecordSelect) Aggregate(fns ...AggregateFunc) *MemoryRecordSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MemoryRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MemoryRecordQuery, *MemoryRecordSelect](ctx, _s.MemoryRecordQuery, _s, _s.inters, v)
}

func (_s *MemoryRecordSelect) sqlScan(ctx context.Context, root *MemoryRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
