package metrics

import "fmt"

// TrackPanic tracks panic occurrences
func TrackPanic(component string) {
	if m := GetMetrics(); m != nil {
		m.Error.PanicsTotal.WithLabelValues(component).Inc()
	}
}

// TrackError tracks errors by component and type
func TrackError(component, errorType string) {
	if m := GetMetrics(); m != nil {
		m.Error.ErrorsTotal.WithLabelValues(component, errorType).Inc()
	}
}

// SetComponentHealth records whether a dependency such as the NFT API answered its last call.
func SetComponentHealth(component string, healthy bool) {
	if m := GetMetrics(); m != nil {
		gauge := m.Error.ComponentHealth.WithLabelValues(component)
		if healthy {
			gauge.Set(1)
		} else {
			gauge.Set(0)
		}
	}
}

// RecoverFromPanic must be deferred. It counts a panic against component and panics again
// with the component prefixed, so the crash still surfaces.
func RecoverFromPanic(component string) {
	r := recover()
	if r == nil {
		return
	}

	TrackPanic(component)
	TrackError(component, "panic")
	panic(fmt.Sprintf("%s: %v", component, r))
}
