package cli

// Options is the command line surface: interact with x-callback-url APIs of
// local applications.
type Options struct {
	Source  string `short:"s" long:"source" description:"x-source value identifying this client" default:"callback"`
	Timeout int    `short:"t" long:"timeout" description:"seconds to wait for a callback, 0 waits forever" default:"0"`
	Listen  string `short:"l" long:"listen" description:"inbound callback listen address" default:"127.0.0.1:0"`
	Verbose bool   `short:"v" long:"verbose" description:"log protocol traffic"`

	Args struct {
		Scheme     string   `positional-arg-name:"scheme" description:"scheme of the target app, e.g. bear" required:"yes"`
		Action     string   `positional-arg-name:"action" description:"action for the target app to execute, e.g. create" required:"yes"`
		Parameters []string `positional-arg-name:"parameters" description:"URL encoded key=value action parameters, e.g. title=My%20Note"`
	} `positional-args:"yes"`
}
