package callback

import (
	"time"

	"go.uber.org/zap"

	"github.com/xcallback/callback/client"
	"github.com/xcallback/callback/opener"
)

// Options configures a Service.
type Options struct {
	// Scheme return URLs are addressed at; defaults to callback.
	Scheme string
	// Source identifies this client in the outbound x-source parameter;
	// defaults to callback.
	Source string
	// Timeout bounds the wait for a callback. Zero, the default, waits
	// forever, matching the protocol's lack of a response guarantee.
	Timeout time.Duration
	// Logger used by the registry, dispatcher and client. Nil disables
	// logging.
	Logger *zap.SugaredLogger
}

func (o *Options) Init() {
	if o.Scheme == "" {
		o.Scheme = client.DefaultScheme
	}
	if o.Source == "" {
		o.Source = client.DefaultSource
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
}

// Service bundles the pieces of one x-callback-url client: the shared
// correlation registry, the dispatcher the inbound event source feeds, and
// the executing client.
type Service struct {
	Registry   *client.Registry
	Dispatcher *client.Dispatcher
	Client     *client.Client
}

// New creates a Service executing requests through op.
func New(op opener.Opener, options *Options) *Service {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	registry := client.NewRegistry(options.Logger)
	return &Service{
		Registry:   registry,
		Dispatcher: client.NewDispatcher(registry, options.Logger),
		Client: client.New(registry, op,
			client.WithScheme(options.Scheme),
			client.WithSource(options.Source),
			client.WithTimeout(options.Timeout),
			client.WithLogger(options.Logger)),
	}
}

// Close abandons every outstanding request; their waiters observe a transport
// closed failure.
func (s *Service) Close() {
	s.Registry.Close()
}
