package observability

type Metrics interface {
	ObserveList(fetchMs, filterMs float64, matched, total int)
	ObserveUniqueCheck(source string, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveList(float64, float64, int, int)   {}
func (Noop) ObserveUniqueCheck(string, float64)       {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveKafka(float64, bool)               {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
