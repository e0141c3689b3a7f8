package schema

import (
	"net/url"
	"strings"
)

// Host is the fixed authority component of every x-callback-url.
const Host = "x-callback-url"

// Reserved parameter keys defined by the x-callback-url convention.
const (
	ParamKeySource  = "x-source"
	ParamKeySuccess = "x-success"
	ParamKeyError   = "x-error"
	ParamKeyCancel  = "x-cancel"
)

// reservedPrefix marks a query key as interpreted by the protocol rather than
// the target application.
const reservedPrefix = "x-"

// Param is a single key/value query parameter. Order of params is significant
// for round-trip serialization, so params travel as slices, not maps.
type Param struct {
	Key   string
	Value string
}

// Reserved holds the four well-known return-address parameters. An empty
// field is unset and omitted from serialization.
type Reserved struct {
	Source  string
	Success string
	Error   string
	Cancel  string
}

// XCallbackURL models one x-callback-url: a target scheme, an action carried
// as the URL path, ordered free-form action parameters and the typed reserved
// parameters. Query keys with the x- prefix that are not one of the four
// recognized names are retained verbatim so parsing stays lossless.
type XCallbackURL struct {
	scheme        string
	action        string
	actionParams  []Param
	reserved      Reserved
	extraReserved []Param
}

// New creates an empty XCallbackURL addressed at the given scheme.
func New(scheme string) *XCallbackURL {
	return &XCallbackURL{scheme: scheme}
}

// Parse decodes input into an XCallbackURL. It fails with ErrInvalidHost when
// the authority differs from the fixed x-callback-url host. Query parameters
// are partitioned on the x- key prefix: the four recognized reserved keys fill
// the Reserved fields, every other pair becomes an action parameter in its
// original order.
func Parse(input string) (*XCallbackURL, error) {
	u, err := url.Parse(input)
	if err != nil {
		return nil, err
	}
	if u.Host != Host {
		return nil, NewInvalidHost(u.Host)
	}
	params, err := parseQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}
	ret := &XCallbackURL{
		scheme: u.Scheme,
		action: strings.TrimPrefix(u.Path, "/"),
	}
	for _, p := range params {
		if !strings.HasPrefix(p.Key, reservedPrefix) {
			ret.actionParams = append(ret.actionParams, p)
			continue
		}
		switch p.Key {
		case ParamKeySource:
			ret.reserved.Source = p.Value
		case ParamKeySuccess:
			ret.reserved.Success = p.Value
		case ParamKeyError:
			ret.reserved.Error = p.Value
		case ParamKeyCancel:
			ret.reserved.Cancel = p.Value
		default:
			ret.extraReserved = append(ret.extraReserved, p)
		}
	}
	return ret, nil
}

// Scheme returns the target application scheme.
func (u *XCallbackURL) Scheme() string {
	return u.scheme
}

// SetScheme replaces the target application scheme.
func (u *XCallbackURL) SetScheme(scheme string) {
	u.scheme = scheme
}

// Action returns the operation name carried as the URL path.
func (u *XCallbackURL) Action() string {
	return u.action
}

// SetAction replaces the operation name.
func (u *XCallbackURL) SetAction(action string) {
	u.action = action
}

// ActionParams returns a copy of the ordered free-form parameters.
func (u *XCallbackURL) ActionParams() []Param {
	ret := make([]Param, len(u.actionParams))
	copy(ret, u.actionParams)
	return ret
}

// ActionParam returns the value of the first action parameter with the given
// key.
func (u *XCallbackURL) ActionParam(key string) (string, bool) {
	for _, p := range u.actionParams {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// SetActionParams replaces the full ordered action parameter list.
func (u *XCallbackURL) SetActionParams(params []Param) {
	u.actionParams = make([]Param, len(params))
	copy(u.actionParams, params)
}

// AppendActionParam appends a single action parameter.
func (u *XCallbackURL) AppendActionParam(key, value string) {
	u.actionParams = append(u.actionParams, Param{Key: key, Value: value})
}

// Reserved returns the reserved return-address parameters.
func (u *XCallbackURL) Reserved() Reserved {
	return u.reserved
}

// SetReserved replaces the reserved return-address parameters. Unset fields
// are omitted from serialization.
func (u *XCallbackURL) SetReserved(reserved Reserved) {
	u.reserved = reserved
}

// Source returns the x-source value identifying the originating application.
func (u *XCallbackURL) Source() string {
	return u.reserved.Source
}

// Clone returns a deep copy of the URL.
func (u *XCallbackURL) Clone() *XCallbackURL {
	ret := &XCallbackURL{
		scheme:   u.scheme,
		action:   u.action,
		reserved: u.reserved,
	}
	ret.actionParams = append(ret.actionParams, u.actionParams...)
	ret.extraReserved = append(ret.extraReserved, u.extraReserved...)
	return ret
}

// String serializes the URL as scheme://x-callback-url/<action> followed by a
// query string holding action parameters in insertion order, then reserved
// parameters in the fixed order source, success, error, cancel. No query
// string is appended when there are no parameters.
func (u *XCallbackURL) String() string {
	var sb strings.Builder
	sb.WriteString(u.scheme)
	sb.WriteString("://")
	sb.WriteString(Host)
	sb.WriteString("/")
	sb.WriteString(u.action)
	query := encodeQuery(u.queryParams())
	if query != "" {
		sb.WriteString("?")
		sb.WriteString(query)
	}
	return sb.String()
}

func (u *XCallbackURL) queryParams() []Param {
	ret := make([]Param, 0, len(u.actionParams)+4+len(u.extraReserved))
	ret = append(ret, u.actionParams...)
	for _, p := range []Param{
		{Key: ParamKeySource, Value: u.reserved.Source},
		{Key: ParamKeySuccess, Value: u.reserved.Success},
		{Key: ParamKeyError, Value: u.reserved.Error},
		{Key: ParamKeyCancel, Value: u.reserved.Cancel},
	} {
		if p.Value != "" {
			ret = append(ret, p)
		}
	}
	ret = append(ret, u.extraReserved...)
	return ret
}

// parseQuery decodes a raw query preserving pair order; url.Values would lose
// it.
func parseQuery(raw string) ([]Param, error) {
	if raw == "" {
		return nil, nil
	}
	var ret []Param
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Param{Key: decodedKey, Value: decodedValue})
	}
	return ret, nil
}

func encodeQuery(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
