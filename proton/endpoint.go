/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

// This file defines the boundary to the protocol engine: the interfaces
// the engine implements for its endpoints and deliveries, and the
// commands the adapter issues back through them.

package proton

import (
	"github.com/ncau/qpid-proton/amqp"
)

// Condition is an AMQP error condition attached to an endpoint or
// transport by the local or remote peer.
type Condition interface {
	// IsSet is true if the condition carries an error.
	IsSet() bool
	// Name is the AMQP condition name, e.g. "amqp:not-found".
	Name() string
	// Description is the human readable description.
	Description() string
	// Error returns the condition as an amqp.Error, or nil if not set.
	Error() error
}

// Endpoint is the common interface for Connection, Session and Link.
//
// Endpoint values must be comparable: the adapter uses them as map keys
// for its per-endpoint side tables. An engine normally implements them
// as pointers to its own endpoint records, which satisfies this.
type Endpoint interface {
	// State is the local/remote open/closed state.
	State() State
	// Open the local end of the endpoint.
	Open()
	// Close the local end of the endpoint.
	Close()
	// RemoteCondition is the error condition set by the remote peer.
	RemoteCondition() Condition
	// String is a human readable name.
	String() string
	// Type is a human readable endpoint type: "connection", "session",
	// "sender-link" or "receiver-link".
	Type() string
}

// Connection is an AMQP connection endpoint. It owns sessions, which
// own links.
type Connection interface {
	Endpoint
	// Transport carrying this connection.
	Transport() Transport
}

// Session is an AMQP session endpoint, owned by a Connection.
type Session interface {
	Endpoint
	// Connection that owns this session.
	Connection() Connection
}

// Link is an AMQP link endpoint, owned by a Session. A link is either a
// sender or a receiver, never both.
type Link interface {
	Endpoint
	// Name of the link.
	Name() string
	// Session that owns this link.
	Session() Session
	// IsSender is true for sending links.
	IsSender() bool
	// IsReceiver is true for receiving links.
	IsReceiver() bool
	// Credit is the outstanding credit on the link.
	Credit() int
	// Flow adjusts the link credit by delta. The engine treats a
	// non-positive delta as a no-op, so callers may issue redundant
	// flow commands safely.
	Flow(delta int)
}

// Delivery is one in-flight message transfer on a link.
type Delivery interface {
	// Link carrying this delivery.
	Link() Link
	// Settled is true once the remote peer has settled the delivery.
	Settled() bool
	// Updated is true if the remote state or settlement of the delivery
	// changed in the event being dispatched.
	Updated() bool
	// Readable is true on a receiver delivery once message data is
	// available to decode.
	Readable() bool
	// Partial is true while the message data is still incomplete.
	Partial() bool
	// Remote is the outcome state set by the remote peer.
	Remote() Disposition
	// Update sets the local outcome state of the delivery.
	Update(d Disposition)
	// Settle settles the delivery locally. After settling, the delivery
	// is no longer valid.
	Settle()
	// Decode decodes the delivery's message data into m, overwriting
	// any previous content. Only valid when the delivery is readable
	// and not partial.
	Decode(m *amqp.Message) error
}

// Transport is the network side of a connection.
type Transport interface {
	// Condition is the transport-level error condition.
	Condition() Condition
	String() string
}

// SettleAs is equivalent to d.Update(disposition); d.Settle()
func SettleAs(d Delivery, disposition Disposition) {
	d.Update(disposition)
	d.Settle()
}

// Accept accepts and settles a delivery.
func Accept(d Delivery) { SettleAs(d, Accepted) }

// Reject rejects and settles a delivery.
func Reject(d Delivery) { SettleAs(d, Rejected) }

// Release releases and settles a delivery.
// If delivered is true the delivery count for the message will be increased.
func Release(d Delivery, delivered bool) {
	if delivered {
		SettleAs(d, Modified)
	} else {
		SettleAs(d, Released)
	}
}

// HasMessage is true if all message data is available.
func HasMessage(d Delivery) bool { return d != nil && d.Readable() && !d.Partial() }

// EndpointError returns the remote error condition of an endpoint, or
// nil if there is none.
func EndpointError(e Endpoint) error {
	return e.RemoteCondition().Error()
}
