package ports

import "declutter/internal/domain"

// Metrics receives counters from a cleanup run
type Metrics interface {
	FileMoved(category domain.Category)
	FileSkipped(reason domain.Reason)
	MoveFailed(category domain.Category)
	LedgerWriteFailed()
	RunFinished()
}

// NopMetrics discards every observation
type NopMetrics struct{}

func (NopMetrics) FileMoved(domain.Category)  {}
func (NopMetrics) FileSkipped(domain.Reason)  {}
func (NopMetrics) MoveFailed(domain.Category) {}
func (NopMetrics) LedgerWriteFailed()         {}
func (NopMetrics) RunFinished()               {}
