package production

import (
	"github.com/comalice/qpgo"
	"github.com/rs/zerolog"
)

// ZerologObserver is a production qpgo.Observer that writes signal
// registration (debug level) and framework add/stop (info level) to a
// zerolog.Logger. The dispatch hooks are the embedded no-ops, so nothing
// is logged per dispatched event.
type ZerologObserver struct {
	qpgo.NoopObserver
	Log zerolog.Logger
}

// NewZerologObserver returns a ZerologObserver writing to log.
func NewZerologObserver(log zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{Log: log}
}

func (o *ZerologObserver) OnSignalRegister(name string, id qpgo.Signal) {
	o.Log.Debug().Str("signal", name).Uint32("id", uint32(id)).Msg("signal registered")
}

func (o *ZerologObserver) OnFrameworkAdd(ao *qpgo.ActiveObject) {
	o.Log.Info().Str("ao", ao.Name).Int("priority", ao.Priority).Str("instance", ao.InstanceID.String()).Msg("active object registered")
}

func (o *ZerologObserver) OnFrameworkStop() {
	o.Log.Info().Msg("framework stopped")
}
