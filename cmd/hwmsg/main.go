package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/urfave/cli/v2"

	hwproto "github.com/skycoin/skycoin-sub000"
	"github.com/skycoin/skycoin-sub000/schema"
	"github.com/skycoin/skycoin-sub000/wire"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "hwmsg",
		Usage: "Inspect, decode and encode hardware wallet protocol messages",
		Description: `hwmsg works on the message set embedded in this module.

Payloads are given and printed as hex. Bytes fields are hex strings in JSON.
The HWWIRE_* environment variables set the decoder defaults; the flags below
override them.`,
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "allow-unknown-enum",
				Usage: "decode enum numbers outside the declared values instead of failing",
			},
			&cli.BoolFlag{
				Name:  "preserve-unknown",
				Usage: "keep unknown fields as raw bytes under __unknown",
			},
			&cli.BoolFlag{
				Name:  "defaults",
				Usage: "fill absent optional fields with their declared defaults",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (error, warn, info, debug, trace)",
				Value: "error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List messages with their wire type IDs",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "enums", Usage: "list enums instead"},
				},
				Action: listCommand,
			},
			{
				Name:      "describe",
				Usage:     "Show the fields of a message or the values of an enum",
				ArgsUsage: "<name>",
				Action:    describeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode a payload into JSON",
				ArgsUsage: "<kind|type-id> <hex>",
				Action:    decodeCommand,
			},
			{
				Name:      "encode",
				Usage:     "Encode JSON fields into a payload",
				ArgsUsage: "<kind> <json>",
				Action:    encodeCommand,
			},
		},
	}
}

// newCodec builds a codec from the global flags.
func newCodec(c *cli.Context) (*hwproto.Codec, error) {
	factory := logging.NewDefaultLoggerFactory()
	level, err := parseLogLevel(c.String("log-level"))
	if err != nil {
		return nil, err
	}
	factory.DefaultLogLevel = level
	factory.Writer = c.App.ErrWriter

	config := wire.ConfigFromEnv()
	if c.IsSet("allow-unknown-enum") {
		config.AllowUnknownEnumNumberDecode = c.Bool("allow-unknown-enum")
	}
	if c.IsSet("preserve-unknown") {
		config.PreserveUnknownBytesOnDecode = c.Bool("preserve-unknown")
	}
	if c.IsSet("defaults") {
		config.PopulateDefaultsOnDecode = c.Bool("defaults")
	}
	return hwproto.NewDefault(factory, hwproto.WithConfig(config))
}

func parseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(s) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
}

func listCommand(c *cli.Context) error {
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	out := c.App.Writer
	if c.Bool("enums") {
		for _, name := range codec.ListEnums() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	reg := codec.Registry()
	for _, id := range reg.TypeIDs() {
		msg, err := reg.SchemaForTypeID(id)
		if err != nil {
			return err
		}
		dir := string(msg.Direction)
		if dir == "" {
			dir = "-"
		}
		fmt.Fprintf(out, "%5d  %-4s %s\n", id, dir, msg.Name)
	}
	return nil
}

func describeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("describe takes exactly one name")
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	name := c.Args().First()
	out := c.App.Writer
	reg := codec.Registry()

	if msg, err := reg.GetMessage(name); err == nil {
		if msg.HasTypeID {
			fmt.Fprintf(out, "message %s = %d\n", msg.FullName, msg.TypeID)
		} else {
			fmt.Fprintf(out, "message %s\n", msg.FullName)
		}
		for _, f := range msg.Fields {
			line := fmt.Sprintf("  %-8s %-24s %s = %d", f.Label, fieldTypeName(f), f.Name, f.Number)
			if f.HasDefault() {
				line += fmt.Sprintf(" [default=%s]", f.DefaultValue)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	}
	if enum, err := reg.GetEnum(name); err == nil {
		fmt.Fprintf(out, "enum %s\n", enum.FullName)
		for _, v := range enum.Values {
			fmt.Fprintf(out, "  %s = %d\n", v.Name, v.Number)
		}
		return nil
	}
	return fmt.Errorf("no message or enum named %q", name)
}

func fieldTypeName(f *schema.Field) string {
	switch f.Type.Kind {
	case schema.KindMessage:
		return f.Type.MessageType
	case schema.KindEnum:
		return f.Type.EnumType
	}
	return string(f.Type.PrimitiveType)
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("decode takes <kind|type-id> <hex>")
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	payload, err := hex.DecodeString(strings.TrimPrefix(c.Args().Get(1), "0x"))
	if err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}

	kind := c.Args().First()
	var fields map[string]interface{}
	if id, err := strconv.ParseUint(kind, 10, 16); err == nil {
		decoded, err := codec.Decode(uint16(id), payload)
		if err != nil {
			return err
		}
		kind, fields = decoded.Name, decoded.Fields
	} else {
		fields, err = codec.DecodeKind(kind, payload)
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(map[string]interface{}{kind: hexify(fields)}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func encodeCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("encode takes <kind> <json>")
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	kind := c.Args().First()
	msg, err := codec.Registry().SchemaForKind(kind)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(strings.NewReader(c.Args().Get(1)))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("failed to parse fields: %w", err)
	}
	if err := unhexify(fields, msg); err != nil {
		return err
	}

	id, payload, err := codec.Encode(kind, fields)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d %s\n", id, hex.EncodeToString(payload))
	return nil
}

// hexify replaces byte slices with their hex encoding, recursively.
func hexify(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return hex.EncodeToString(t)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = hexify(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = hexify(e)
		}
		return out
	}
	return v
}

// unhexify decodes the hex strings given for bytes fields of msg in place.
func unhexify(fields map[string]interface{}, msg *schema.Message) error {
	for _, f := range msg.Fields {
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		convert := func(e interface{}) (interface{}, error) {
			switch {
			case f.Type.Kind == schema.KindPrimitive && f.Type.PrimitiveType == schema.TypeBytes:
				s, ok := e.(string)
				if !ok {
					return e, nil
				}
				b, err := hex.DecodeString(s)
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", f.Name, err)
				}
				return b, nil
			case f.Type.Kind == schema.KindMessage && f.Type.Message != nil:
				if m, ok := e.(map[string]interface{}); ok {
					return m, unhexify(m, f.Type.Message)
				}
			}
			return e, nil
		}

		if list, ok := v.([]interface{}); ok && f.Label == schema.LabelRepeated {
			for i, e := range list {
				conv, err := convert(e)
				if err != nil {
					return err
				}
				list[i] = conv
			}
			continue
		}
		conv, err := convert(v)
		if err != nil {
			return err
		}
		fields[f.Name] = conv
	}
	return nil
}
