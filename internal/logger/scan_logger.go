// Package logger provides scan-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// ScanLogger provides dedicated logging for matching-engine scan runs.
type ScanLogger struct {
	*logrus.Entry
}

// NewScanLogger creates a new scan logger.
func NewScanLogger(baseLogger *logrus.Logger) *ScanLogger {
	return &ScanLogger{
		Entry: baseLogger.WithField("component", "scanner"),
	}
}

// LogScanStarted logs the start of a scan run.
func (sl *ScanLogger) LogScanStarted(scanID, sport string, games, markets int) {
	sl.WithFields(logrus.Fields{
		"scan_id": scanID,
		"sport":   sport,
		"games":   games,
		"markets": markets,
	}).Info("Scan started")
}

// LogScanCompleted logs a finished scan run.
func (sl *ScanLogger) LogScanCompleted(scanID string, quotesIngested, propsAnalyzed, edgesFound int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"scan_id":          scanID,
		"quotes_ingested":  quotesIngested,
		"props_analyzed":   propsAnalyzed,
		"edges_found":      edgesFound,
		"scan_duration_ms": durationMs,
	}).Info("Scan completed")
}

// LogEdgeFound logs a single actionable edge.
func (sl *ScanLogger) LogEdgeFound(scanID, propID, player, market, edgeType string, score, softLine float64, fairValue *float64) {
	fields := logrus.Fields{
		"scan_id":    scanID,
		"prop_id":    propID,
		"player":     player,
		"market":     market,
		"edge_type":  edgeType,
		"edge_score": score,
		"soft_line":  softLine,
	}
	if fairValue != nil {
		fields["fair_value"] = *fairValue
	}
	sl.WithFields(fields).Info("Edge detected")
}

// LogGameFailed logs an isolated per-game retrieval failure.
func (sl *ScanLogger) LogGameFailed(scanID, gameID string, err error) {
	sl.WithFields(logrus.Fields{
		"scan_id": scanID,
		"game_id": gameID,
		"error":   err.Error(),
	}).Warn("Game fetch failed, continuing with remaining games")
}
