package log

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/printers"
)

// Log reads or appends the shared activity log. With no Message it prints
// the log (newest first, as stored); with one it appends an entry.
type Log struct {
	Message string
	User    string
	Client  *client.Client
}

func (n *Log) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not reach log, no api client")
	}

	if n.Message != "" {
		return n.Client.AddLog(ctx, client.LogEntry{Msg: n.Message, User: n.User})
	}

	entries, err := n.Client.GetLog(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Activity log")
	pp.Log(entries)
	return nil
}
