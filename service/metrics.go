package service

// MetricsRecorder receives scoring events. observability.Metrics implements it.
type MetricsRecorder interface {
	ObserveScore(band string, score int)
	ObserveSimulation(delta int)
	ObserveCache(hit bool)
}

type noopMetrics struct{}

func (noopMetrics) ObserveScore(string, int) {}
func (noopMetrics) ObserveSimulation(int)    {}
func (noopMetrics) ObserveCache(bool)        {}
