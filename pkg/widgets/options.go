package widgets

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidgets/internal/props"
	"github.com/goliatone/go-formwidgets/pkg/format"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

// Option is one choice of an options control. Value keeps its Go type; it is
// encoded for the page and decoded back on submission.
type Option struct {
	Value       any
	Title       string
	ContentType format.ContentType
	// Divider options separate groups and cannot be selected.
	Divider bool
}

// NewOption returns a plain-text option.
func NewOption(value any, title string) Option {
	return Option{Value: value, Title: title, ContentType: format.ContentTypePlain}
}

// NewDivider returns a divider option.
func NewDivider(title string) Option {
	return Option{Title: title, ContentType: format.ContentTypePlain, Divider: true}
}

// EncodeValue renders an option value for the page.
func EncodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	default:
		return props.String(v)
	}
}

// OptionControl holds the option list and selection shared by flydowns and
// radio lists.
type OptionControl struct {
	Base
	Name     string
	Options  []Option
	Value    any
	Required bool
	// TranslateTitles passes option titles through the request localizer.
	TranslateTitles bool
}

func newOptionControl(id string) OptionControl {
	return OptionControl{Base: NewBase(id)}
}

// AddOption appends a plain-text option.
func (c *OptionControl) AddOption(value any, title string) {
	c.Options = append(c.Options, NewOption(value, title))
}

// FieldName returns the name submitted values are read from.
func (c *OptionControl) FieldName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return c.ID
}

// IsRequired reports whether a selection is required.
func (c *OptionControl) IsRequired() bool { return c.Required }

// IsSelected reports whether opt is the current value.
func (c *OptionControl) IsSelected(opt Option) bool {
	if opt.Divider || c.Value == nil {
		return false
	}
	return EncodeValue(c.Value) == EncodeValue(opt.Value)
}

// Lookup decodes a submitted value into the matching option.
func (c *OptionControl) Lookup(raw string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.Divider {
			continue
		}
		if EncodeValue(opt.Value) == raw {
			return opt, true
		}
	}
	return Option{}, false
}

// Process selects the option matching the submitted value. An empty or
// unknown value clears the selection.
func (c *OptionControl) Process(ctx context.Context, values url.Values) error {
	if !c.Visible || !c.Sensitive || values == nil {
		return nil
	}
	raw, ok := values[c.FieldName()]
	if !ok {
		if c.Required {
			c.Value = nil
			c.AddMessage(NewErrorMessage(render.LocalizerFrom(ctx).T(render.MsgRequired)))
		}
		return nil
	}
	c.Value = nil
	if len(raw) > 0 {
		if opt, found := c.Lookup(raw[0]); found {
			c.Value = opt.Value
		}
	}
	if c.Value == nil && c.Required {
		c.AddMessage(NewErrorMessage(render.LocalizerFrom(ctx).T(render.MsgRequired)))
	}
	return nil
}

func (c *OptionControl) title(ctx context.Context, opt Option) string {
	title := opt.Title
	if c.TranslateTitles {
		title = render.LocalizerFrom(ctx).T(title)
	}
	return format.Content(title, opt.ContentType)
}

func (c *OptionControl) setProperty(component, name string, value any) error {
	if ok, err := c.Base.setProperty(name, value); ok {
		return err
	}
	var err error
	switch name {
	case "name":
		c.Name = props.String(value)
	case "value":
		c.Value = value
	case "required":
		c.Required, err = props.Bool(name, value)
	case "translate_titles":
		c.TranslateTitles, err = props.Bool(name, value)
	case "options":
		c.Options, err = decodeOptions(name, value)
	default:
		return props.Unknown(component, name)
	}
	return err
}

// decodeOptions accepts a list of {value, title} maps or a value → title map.
func decodeOptions(name string, value any) ([]Option, error) {
	switch v := value.(type) {
	case []Option:
		return append([]Option(nil), v...), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]Option, 0, len(keys))
		for _, key := range keys {
			out = append(out, NewOption(key, props.String(v[key])))
		}
		return out, nil
	case []any:
		out := make([]Option, 0, len(v))
		for _, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, render.ConfigErrorf(name, render.ErrInvalidProperty, "option %v is not a map", item)
			}
			if divider, _ := props.Bool("divider", entry["divider"]); divider {
				out = append(out, NewDivider(props.String(entry["title"])))
				continue
			}
			opt := NewOption(entry["value"], props.String(entry["title"]))
			if ct, ok := entry["content_type"]; ok {
				opt.ContentType = format.ParseContentType(props.String(ct))
			}
			out = append(out, opt)
		}
		return out, nil
	}
	return nil, render.ConfigErrorf(name, render.ErrInvalidProperty, "unsupported options %T", value)
}

func (c *OptionControl) replica(suffix string) OptionControl {
	clone := *c
	clone.Base = c.Base.replicaBase(suffix)
	if c.Name != "" {
		clone.Name = replicaID(c.Name, suffix)
	}
	clone.Options = append([]Option(nil), c.Options...)
	return clone
}
