/*
Package mathrender is the entry point for hosts rendering formulas.

A Renderer wraps a build environment with a bounded cache of render trees
and runs builds under a context. Building a formula is a pure function of
its parse tree and the options it is built with, so results are cached by a
digest of both. RenderAll builds several formulas in parallel.

Render trees handed out by a Renderer may be shared between callers and
must not be modified.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathrender

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tymath/core"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/mathbuild"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'tymath.render'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.render")
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer builds formulas into render trees, with caching.
type Renderer struct {
	env         *mathbuild.Environment
	capacity    int
	parallelism int
	mx          sync.Mutex
	cache       *linkedhashmap.Map // key -> []rnode.Node, least recently used first
	stats       CacheStats
}

// CacheStats counts cache lookups.
type CacheStats struct {
	Hits, Misses, Evictions int
	Size                    int
}

// NewRenderer creates a renderer for an environment. The cache capacity is
// taken from register P_CACHESIZE; a capacity of 0 disables caching.
// If env is nil, mathbuild.DefaultEnvironment() is used, if regs is nil,
// default registers are used.
func NewRenderer(env *mathbuild.Environment, regs *params.TypesettingRegisters) *Renderer {
	if env == nil {
		env = mathbuild.DefaultEnvironment()
	}
	if regs == nil {
		regs = params.NewTypesettingRegisters()
	}
	return &Renderer{
		env:         env,
		capacity:    max(0, regs.N(params.P_CACHESIZE)),
		parallelism: runtime.GOMAXPROCS(0),
		cache:       linkedhashmap.New(),
	}
}

// Environment returns the build environment of r.
func (r *Renderer) Environment() *mathbuild.Environment {
	return r.env
}

// SetParallelism limits the number of formulas RenderAll builds at once.
// n < 1 means no limit.
func (r *Renderer) SetParallelism(n int) {
	r.parallelism = n
}

// Render builds a formula into a sequence of unbreakable chunks, see
// mathbuild.Environment.BuildHTML. If opts is nil, the environment's
// default options are used.
//
// If ctx is cancelled before the build completes, Render returns ctx.Err()
// and the result of the build is discarded.
func (r *Renderer) Render(ctx context.Context, nodes []parsenode.Node, opts *mathstyle.Options) ([]rnode.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = r.env.Options()
	}
	key, err := Key(nodes, opts)
	if err != nil {
		tracer().Debugf("formula not cacheable: %v", err)
	} else if chunks, ok := r.lookup(key); ok {
		return chunks, nil
	}
	type result struct {
		chunks []rnode.Node
		err    error
	}
	done := make(chan result, 1)
	go func() {
		chunks, err := r.env.BuildHTML(nodes, opts)
		done <- result{chunks, err}
	}()
	select {
	case <-ctx.Done():
		tracer().Infof("render cancelled: %v", ctx.Err())
		return nil, ctx.Err()
	case res := <-done:
		if res.err == nil && key != "" {
			r.store(key, res.chunks)
		}
		return res.chunks, res.err
	}
}

// RenderJSON decodes a formula from JSON and renders it.
func (r *Renderer) RenderJSON(ctx context.Context, data []byte, opts *mathstyle.Options) ([]rnode.Node, error) {
	nodes, err := parsenode.Decode(data)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, nodes, opts)
}

// RenderAll renders a batch of formulas in parallel, returning results in
// input order. The first error cancels the remaining builds and is
// returned.
func (r *Renderer) RenderAll(ctx context.Context, exprs [][]parsenode.Node, opts *mathstyle.Options) ([][]rnode.Node, error) {
	results := make([][]rnode.Node, len(exprs))
	g, groupCtx := errgroup.WithContext(ctx)
	if r.parallelism > 0 {
		g.SetLimit(r.parallelism)
	}
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			chunks, err := r.Render(groupCtx, expr, opts)
			if err != nil {
				return core.WrapError(err, core.Code(err), "formula #%d", i)
			}
			results[i] = chunks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// --- Cache -----------------------------------------------------------------

// Key computes the cache key of a formula built with options opts: a digest
// of the formula's JSON encoding and the options. Formulas containing
// nodes without a JSON encoding have no key.
func Key(nodes []parsenode.Node, opts *mathstyle.Options) (string, error) {
	data, err := parsenode.Encode(nodes)
	if err != nil {
		return "", err
	}
	o, err := json.Marshal(struct {
		Options string  `json:"options"`
		Weight  string  `json:"weight"`
		Shape   string  `json:"shape"`
		MaxSize float64 `json:"maxsize"`
	}{opts.String(), opts.FontWeight(), opts.FontShape(), cappedSize(opts.MaxSize())})
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write(data)
	h.Write(o)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// cappedSize maps +Inf, which has no JSON representation, to -1.
func cappedSize(x float64) float64 {
	if x > 1e300 {
		return -1
	}
	return x
}

func (r *Renderer) lookup(key string) ([]rnode.Node, bool) {
	r.mx.Lock()
	defer r.mx.Unlock()
	v, found := r.cache.Get(key)
	if !found {
		r.stats.Misses++
		return nil, false
	}
	r.stats.Hits++
	r.cache.Remove(key) // move to most recently used
	r.cache.Put(key, v)
	return v.([]rnode.Node), true
}

func (r *Renderer) store(key string, chunks []rnode.Node) {
	if r.capacity == 0 {
		return
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.cache.Remove(key)
	r.cache.Put(key, chunks)
	for r.cache.Size() > r.capacity {
		it := r.cache.Iterator()
		if !it.First() {
			break
		}
		r.cache.Remove(it.Key())
		r.stats.Evictions++
	}
}

// Stats returns the cache statistics of r.
func (r *Renderer) Stats() CacheStats {
	r.mx.Lock()
	defer r.mx.Unlock()
	s := r.stats
	s.Size = r.cache.Size()
	return s
}

// Purge empties the cache.
func (r *Renderer) Purge() {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.cache.Clear()
}

func (s CacheStats) String() string {
	return fmt.Sprintf("cache: %d entries, %d hits, %d misses, %d evictions",
		s.Size, s.Hits, s.Misses, s.Evictions)
}
