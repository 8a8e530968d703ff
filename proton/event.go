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

package proton

// EventType identifies a raw protocol engine event. The set is closed:
// the engine emits exactly these kinds and the adapter dispatches with
// an exhaustive switch.
type EventType int

const (
	EConnectionInit EventType = iota + 1
	EConnectionBound
	EConnectionUnbound
	EConnectionLocalOpen
	EConnectionRemoteOpen
	EConnectionLocalClose
	EConnectionRemoteClose
	EConnectionFinal

	ESessionInit
	ESessionLocalOpen
	ESessionRemoteOpen
	ESessionLocalClose
	ESessionRemoteClose
	ESessionFinal

	ELinkInit
	ELinkLocalOpen
	ELinkRemoteOpen
	ELinkLocalClose
	ELinkRemoteClose
	ELinkFlow
	ELinkFinal

	EDelivery

	ETransport
	ETransportError
	ETransportHeadClosed
	ETransportTailClosed
	ETransportClosed

	ETimerTask
)

func (t EventType) String() string {
	switch t {
	case EConnectionInit:
		return "ConnectionInit"
	case EConnectionBound:
		return "ConnectionBound"
	case EConnectionUnbound:
		return "ConnectionUnbound"
	case EConnectionLocalOpen:
		return "ConnectionLocalOpen"
	case EConnectionRemoteOpen:
		return "ConnectionRemoteOpen"
	case EConnectionLocalClose:
		return "ConnectionLocalClose"
	case EConnectionRemoteClose:
		return "ConnectionRemoteClose"
	case EConnectionFinal:
		return "ConnectionFinal"
	case ESessionInit:
		return "SessionInit"
	case ESessionLocalOpen:
		return "SessionLocalOpen"
	case ESessionRemoteOpen:
		return "SessionRemoteOpen"
	case ESessionLocalClose:
		return "SessionLocalClose"
	case ESessionRemoteClose:
		return "SessionRemoteClose"
	case ESessionFinal:
		return "SessionFinal"
	case ELinkInit:
		return "LinkInit"
	case ELinkLocalOpen:
		return "LinkLocalOpen"
	case ELinkRemoteOpen:
		return "LinkRemoteOpen"
	case ELinkLocalClose:
		return "LinkLocalClose"
	case ELinkRemoteClose:
		return "LinkRemoteClose"
	case ELinkFlow:
		return "LinkFlow"
	case ELinkFinal:
		return "LinkFinal"
	case EDelivery:
		return "Delivery"
	case ETransport:
		return "Transport"
	case ETransportError:
		return "TransportError"
	case ETransportHeadClosed:
		return "TransportHeadClosed"
	case ETransportTailClosed:
		return "TransportTailClosed"
	case ETransportClosed:
		return "TransportClosed"
	case ETimerTask:
		return "TimerTask"
	default:
		return "Unknown"
	}
}

// Event is a raw AMQP protocol event as emitted by the engine. It is an
// immutable record pairing the event type with references to the
// endpoints and delivery it concerns; references that do not apply to
// the event type are nil.
type Event struct {
	eventType  EventType
	connection Connection
	session    Session
	link       Link
	delivery   Delivery
	transport  Transport
}

// MakeEvent builds an Event. It is called by the protocol engine (or a
// test double); references that do not apply may be nil.
func MakeEvent(t EventType, c Connection, s Session, l Link, d Delivery, tr Transport) Event {
	return Event{
		eventType:  t,
		connection: c,
		session:    s,
		link:       l,
		delivery:   d,
		transport:  tr,
	}
}

func (e Event) IsNil() bool            { return e.eventType == EventType(0) }
func (e Event) Type() EventType        { return e.eventType }
func (e Event) Connection() Connection { return e.connection }
func (e Event) Session() Session       { return e.session }
func (e Event) Link() Link             { return e.link }
func (e Event) Delivery() Delivery     { return e.delivery }
func (e Event) Transport() Transport   { return e.transport }
func (e Event) String() string         { return e.Type().String() }

// State holds the state flags for an AMQP endpoint.
type State byte

const (
	SLocalUninit State = 1 << iota
	SLocalActive
	SLocalClosed
	SRemoteUninit
	SRemoteActive
	SRemoteClosed
)

// Has is true if bits & state is non 0.
func (s State) Has(bits State) bool { return s&bits != 0 }

func (s State) LocalUninit() bool  { return s.Has(SLocalUninit) }
func (s State) LocalActive() bool  { return s.Has(SLocalActive) }
func (s State) LocalClosed() bool  { return s.Has(SLocalClosed) }
func (s State) RemoteUninit() bool { return s.Has(SRemoteUninit) }
func (s State) RemoteActive() bool { return s.Has(SRemoteActive) }
func (s State) RemoteClosed() bool { return s.Has(SRemoteClosed) }

// Local returns a State containing just the local flags
func (s State) Local() State { return s & (SLocalUninit | SLocalActive | SLocalClosed) }

// Remote returns a State containing just the remote flags
func (s State) Remote() State { return s & (SRemoteUninit | SRemoteActive | SRemoteClosed) }

// Disposition is the outcome state of a delivery, as defined by the
// AMQP 1.0 specification.
type Disposition uint64

const (
	NoDisposition Disposition = 0
	Received      Disposition = 0x23
	Accepted      Disposition = 0x24
	Rejected      Disposition = 0x25
	Released      Disposition = 0x26
	Modified      Disposition = 0x27
)

func (d Disposition) String() string {
	switch d {
	case NoDisposition:
		return "no-disposition"
	case Received:
		return "received"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Released:
		return "released"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}
