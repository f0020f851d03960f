// Package protob embeds the protobuf definitions shared with the device
// firmware. The MessageType enum in messages.proto is the wire contract:
// identifiers must never be renumbered.
package protob

import "embed"

// Files holds types.proto and messages.proto.
//
//go:embed *.proto
var Files embed.FS

// Root is the entry file; it imports the rest.
const Root = "messages.proto"
