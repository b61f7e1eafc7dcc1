package log15adapter_test

import (
	"context"
	"testing"

	"github.com/jackc/pgcodec/log/log15adapter"
	"github.com/jackc/pgcodec/tracelog"
	"github.com/stretchr/testify/require"
	log15 "gopkg.in/inconshreveable/log15.v2"
)

func TestLogger(t *testing.T) {
	var records []*log15.Record
	l := log15.New()
	l.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		records = append(records, r)
		return nil
	}))

	logger := log15adapter.NewLogger(l)
	logger.Log(context.Background(), tracelog.LogLevelWarn, "Decode", map[string]any{"type": "line"})
	logger.Log(context.Background(), tracelog.LogLevelTrace, "Encode", nil)

	require.Len(t, records, 2)
	require.Equal(t, log15.LvlWarn, records[0].Lvl)
	require.Equal(t, "Decode", records[0].Msg)
	require.Equal(t, []interface{}{"type", "line"}, records[0].Ctx)

	require.Equal(t, log15.LvlDebug, records[1].Lvl)
	require.Equal(t, []interface{}{"PGCODEC_LOG_LEVEL", tracelog.LogLevelTrace}, records[1].Ctx)
}
