package simulation

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Logger buffers turn records in memory and appends them to a CSV file in
// batches, so disk writes never sit inside the turn loop.
type Logger struct {
	file       *os.File
	writer     *csv.Writer
	buffer     []TurnRecord
	bufferSize int
}

var csvHeader = []string{
	"game_id", "game", "turn", "player", "position", "space",
	"cash", "bank_cash", "net_worth", "properties_owned",
	"in_jail", "decision", "result", "winner",
}

// NewLogger creates or truncates the CSV file and writes the header.
func NewLogger(path string, bufferSize int) (*Logger, error) {
	if bufferSize <= 0 {
		bufferSize = 10000
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create turn log: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write turn log header: %w", err)
	}
	return &Logger{file: f, writer: w, bufferSize: bufferSize}, nil
}

// LogTurn stages one record, flushing when the buffer fills.
func (l *Logger) LogTurn(rec TurnRecord) error {
	l.buffer = append(l.buffer, rec)
	if len(l.buffer) >= l.bufferSize {
		return l.Flush()
	}
	return nil
}

// Flush writes all buffered rows to disk.
func (l *Logger) Flush() error {
	for _, rec := range l.buffer {
		row := []string{
			rec.GameID,
			strconv.Itoa(rec.Game),
			strconv.Itoa(rec.Turn),
			strconv.Itoa(rec.Player),
			strconv.Itoa(rec.Position),
			rec.Space,
			strconv.Itoa(rec.Cash),
			strconv.Itoa(rec.BankCash),
			strconv.Itoa(rec.NetWorth),
			strconv.Itoa(rec.Properties),
			strconv.FormatBool(rec.InJail),
			rec.Decision,
			rec.Result,
			strconv.FormatBool(rec.Winner),
		}
		if err := l.writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn row: %w", err)
		}
	}
	l.buffer = l.buffer[:0]
	l.writer.Flush()
	return l.writer.Error()
}

// Finalize force-writes any remaining rows and closes the file.
func (l *Logger) Finalize() error {
	if err := l.Flush(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
