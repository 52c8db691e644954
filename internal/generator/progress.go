package generator

import "time"

// ProgressReporter provides callbacks for reporting generation progress.
// Implementations can display progress bars, log messages, or remain silent.
// Callbacks are never invoked concurrently.
type ProgressReporter interface {
	// OnDiscoveryStart is called when file discovery begins.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called when file discovery finishes.
	OnDiscoveryComplete(files int)

	// OnFileProcessingStart is called before processing files.
	OnFileProcessingStart(totalFiles int)

	// OnFileProcessed is called after each file is processed.
	OnFileProcessed(fileName string)

	// OnComplete is called when a run finishes, successfully or not.
	OnComplete(stats *Stats, elapsed time.Duration)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                              {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(files int)                  {}
func (n *NoOpProgressReporter) OnFileProcessingStart(totalFiles int)           {}
func (n *NoOpProgressReporter) OnFileProcessed(fileName string)                {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats, elapsed time.Duration) {}
