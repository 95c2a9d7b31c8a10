package metrics

// TrackPanic tracks panic occurrences
func TrackPanic(component string) {
	GetMetrics().Error.PanicsTotal.WithLabelValues(component).Inc()
}

// TrackError tracks errors by component and type
func TrackError(component, errorType string) {
	GetMetrics().Error.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// SetComponentHealth sets the health status of a component
func SetComponentHealth(component string, healthy bool) {
	var status float64
	if healthy {
		status = 1
	}
	GetMetrics().Error.ComponentHealth.WithLabelValues(component).Set(status)
}
