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

import (
	"github.com/ncau/qpid-proton/amqp"
)

// EventHandler handles raw engine events.
type EventHandler interface {
	// HandleEvent is called with one raw event at a time.
	// Typically HandleEvent() is implemented as a switch on e.Type()
	HandleEvent(e Event)
}

// MessagingEventType identifies a high-level messaging event built by
// the MessagingAdapter from one or more raw engine events.
type MessagingEventType int

const (
	// MStart fires once when event processing starts. Only delivered if
	// the adapter has a Container.
	MStart MessagingEventType = iota
	// MSendable fires when a sender link has credit and messages can be
	// transferred.
	MSendable
	// MMessage fires when a complete message has arrived on a receiver.
	MMessage
	// MDeliveryAccept fires when the remote peer accepts an outgoing message.
	MDeliveryAccept
	// MDeliveryReject fires when the remote peer rejects an outgoing message.
	MDeliveryReject
	// MDeliveryRelease fires when the remote peer releases an outgoing
	// message. This covers both the RELEASED and MODIFIED states as
	// defined by the AMQP specification.
	MDeliveryRelease
	// MDeliverySettle fires when the remote peer settles a delivery.
	// This is the point at which it should never be re-transmitted.
	MDeliverySettle
	// MLinkOpen fires when the remote peer opens a link.
	MLinkOpen
	// MLinkClose fires when the remote peer closes a link.
	MLinkClose
	// MLinkError fires before MLinkClose when the remote peer supplied
	// an error condition.
	MLinkError
	// MSessionOpen fires when the remote peer opens a session.
	MSessionOpen
	// MSessionClose fires when the remote peer closes a session.
	MSessionClose
	// MSessionError fires before MSessionClose when the remote peer
	// supplied an error condition.
	MSessionError
	// MConnectionOpen fires when the remote peer opens the connection.
	MConnectionOpen
	// MConnectionClose fires when the remote peer closes the connection.
	MConnectionClose
	// MConnectionError fires before MConnectionClose when the remote
	// peer supplied an error condition.
	MConnectionError
	// MTransportClose fires when the transport tears down under a
	// locally active connection.
	MTransportClose
	// MTransportError fires before MTransportClose when the transport
	// carries an error condition.
	MTransportError
	// MTimer fires on a timer task. Only delivered if the adapter has a
	// Container.
	MTimer
)

func (t MessagingEventType) String() string {
	switch t {
	case MStart:
		return "Start"
	case MSendable:
		return "Sendable"
	case MMessage:
		return "Message"
	case MDeliveryAccept:
		return "DeliveryAccept"
	case MDeliveryReject:
		return "DeliveryReject"
	case MDeliveryRelease:
		return "DeliveryRelease"
	case MDeliverySettle:
		return "DeliverySettle"
	case MLinkOpen:
		return "LinkOpen"
	case MLinkClose:
		return "LinkClose"
	case MLinkError:
		return "LinkError"
	case MSessionOpen:
		return "SessionOpen"
	case MSessionClose:
		return "SessionClose"
	case MSessionError:
		return "SessionError"
	case MConnectionOpen:
		return "ConnectionOpen"
	case MConnectionClose:
		return "ConnectionClose"
	case MConnectionError:
		return "ConnectionError"
	case MTransportClose:
		return "TransportClose"
	case MTransportError:
		return "TransportError"
	case MTimer:
		return "Timer"
	default:
		return "Unknown"
	}
}

// MessagingEvent pairs a messaging event type with the raw engine event
// it was derived from.
type MessagingEvent struct {
	eventType MessagingEventType
	event     Event
}

func (e MessagingEvent) Type() MessagingEventType { return e.eventType }

// Event is the raw engine event this messaging event was built from.
func (e MessagingEvent) Event() Event { return e.event }

func (e MessagingEvent) Connection() Connection { return e.event.Connection() }
func (e MessagingEvent) Session() Session       { return e.event.Session() }
func (e MessagingEvent) Link() Link             { return e.event.Link() }
func (e MessagingEvent) Delivery() Delivery     { return e.event.Delivery() }
func (e MessagingEvent) Transport() Transport   { return e.event.Transport() }
func (e MessagingEvent) String() string         { return e.Type().String() }

// MessagingHandler is the set of callbacks an application can receive
// from a MessagingAdapter, one method per messaging event type. Each
// method receives the messaging event plus the endpoint or delivery it
// concerns.
//
// Embed DefaultMessagingHandler and override only the methods you care
// about, every other event becomes a no-op.
//
// Methods are called inline on the event-processing goroutine and must
// return promptly. The *amqp.Message passed to OnMessage is a reused
// per-connection buffer, it is only valid until OnMessage returns.
type MessagingHandler interface {
	OnStart(e MessagingEvent, c *Container)
	OnSendable(e MessagingEvent, l Link)
	OnMessage(e MessagingEvent, d Delivery, m *amqp.Message)
	OnDeliveryAccept(e MessagingEvent, d Delivery)
	OnDeliveryReject(e MessagingEvent, d Delivery)
	OnDeliveryRelease(e MessagingEvent, d Delivery)
	OnDeliverySettle(e MessagingEvent, d Delivery)
	OnLinkOpen(e MessagingEvent, l Link)
	OnLinkClose(e MessagingEvent, l Link)
	OnLinkError(e MessagingEvent, l Link)
	OnSessionOpen(e MessagingEvent, s Session)
	OnSessionClose(e MessagingEvent, s Session)
	OnSessionError(e MessagingEvent, s Session)
	OnConnectionOpen(e MessagingEvent, c Connection)
	OnConnectionClose(e MessagingEvent, c Connection)
	OnConnectionError(e MessagingEvent, c Connection)
	OnTransportClose(e MessagingEvent, t Transport)
	OnTransportError(e MessagingEvent, t Transport)
	OnTimer(e MessagingEvent, c *Container)
}

// DefaultMessagingHandler implements MessagingHandler with a no-op for
// every event. Embed it in your handler to only override the methods
// you need.
type DefaultMessagingHandler struct{}

func (DefaultMessagingHandler) OnStart(MessagingEvent, *Container) {}
func (DefaultMessagingHandler) OnSendable(MessagingEvent, Link) {}
func (DefaultMessagingHandler) OnMessage(MessagingEvent, Delivery, *amqp.Message) {}
func (DefaultMessagingHandler) OnDeliveryAccept(MessagingEvent, Delivery) {}
func (DefaultMessagingHandler) OnDeliveryReject(MessagingEvent, Delivery) {}
func (DefaultMessagingHandler) OnDeliveryRelease(MessagingEvent, Delivery) {}
func (DefaultMessagingHandler) OnDeliverySettle(MessagingEvent, Delivery) {}
func (DefaultMessagingHandler) OnLinkOpen(MessagingEvent, Link) {}
func (DefaultMessagingHandler) OnLinkClose(MessagingEvent, Link) {}
func (DefaultMessagingHandler) OnLinkError(MessagingEvent, Link) {}
func (DefaultMessagingHandler) OnSessionOpen(MessagingEvent, Session) {}
func (DefaultMessagingHandler) OnSessionClose(MessagingEvent, Session) {}
func (DefaultMessagingHandler) OnSessionError(MessagingEvent, Session) {}
func (DefaultMessagingHandler) OnConnectionOpen(MessagingEvent, Connection) {}
func (DefaultMessagingHandler) OnConnectionClose(MessagingEvent, Connection) {}
func (DefaultMessagingHandler) OnConnectionError(MessagingEvent, Connection) {}
func (DefaultMessagingHandler) OnTransportClose(MessagingEvent, Transport) {}
func (DefaultMessagingHandler) OnTransportError(MessagingEvent, Transport) {}
func (DefaultMessagingHandler) OnTimer(MessagingEvent, *Container) {}
