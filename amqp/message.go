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

package amqp

import (
	"fmt"
	"time"
)

// Message is a decoded AMQP 1.0 message: the standard header and
// properties fields plus the body.
//
// The protocol engine decodes delivery data into a Message. On the
// receive path one Message per connection is reused for every inbound
// delivery, so a Message passed to a handler callback is only valid for
// the duration of that callback. Handlers that need to keep the content
// must take a copy, e.g. with NewMessageCopy.
type Message struct {
	// Durable indicates that any parties taking responsibility
	// for the message must durably store the content.
	Durable bool

	// Priority impacts ordering guarantees. Within a given ordered
	// context, higher priority messages may jump ahead of lower
	// priority messages. The default is 4.
	Priority uint8

	// TTL or Time To Live, a message may be dropped after this duration.
	TTL time.Duration

	// FirstAcquirer indicates that the recipient of the message is the
	// first recipient to acquire the message, i.e. there have been no
	// failed delivery attempts to other acquirers.
	FirstAcquirer bool

	// DeliveryCount tracks how many attempts have been made to
	// deliver the message.
	DeliveryCount uint32

	// MessageId provides a unique identifier for a message. It can be a
	// string, an unsigned long, a UUID or a binary value.
	MessageId interface{}

	UserId  string
	Address string
	Subject string
	ReplyTo string

	// CorrelationId is set on correlated request and response messages.
	CorrelationId interface{}

	ContentType     string
	ContentEncoding string

	// ExpiryTime indicates an absolute time when the message may be
	// dropped. A zero time indicates a message that never expires.
	ExpiryTime   time.Time
	CreationTime time.Time

	GroupId        string
	GroupSequence  int32
	ReplyToGroupId string

	// ApplicationProperties are set by the application to be carried
	// with the message. Values must be simple types, not maps, lists or
	// sequences.
	ApplicationProperties map[string]interface{}

	// DeliveryAnnotations are per-delivery instructions, they may be
	// added or removed by intermediaries during delivery.
	DeliveryAnnotations map[string]interface{}

	// MessageAnnotations are added as part of the bare message at
	// creation, usually by an AMQP library.
	MessageAnnotations map[string]interface{}

	// Body is the application content of the message.
	Body interface{}
}

// NewMessage creates a new message with all fields set to their default
// values.
func NewMessage() *Message {
	m := &Message{}
	m.Clear()
	return m
}

// NewMessageWith creates a message with value as the body.
func NewMessageWith(value interface{}) *Message {
	m := NewMessage()
	m.Body = value
	return m
}

// NewMessageCopy creates a copy of an existing message. Use it to keep
// the content of a reused per-connection message beyond the handler
// callback it was delivered in.
func NewMessageCopy(m *Message) *Message {
	m2 := NewMessage()
	m2.CopyFrom(m)
	return m2
}

// Clear resets the message to all default values. The engine calls it
// before decoding a delivery into a reused message.
func (m *Message) Clear() { *m = Message{Priority: 4} }

// CopyFrom replaces the contents of m with a copy of x. Annotation and
// property maps are copied, map values are shared.
func (m *Message) CopyFrom(x *Message) {
	*m = *x
	m.ApplicationProperties = copyMap(x.ApplicationProperties)
	m.DeliveryAnnotations = copyMap(x.DeliveryAnnotations)
	m.MessageAnnotations = copyMap(x.MessageAnnotations)
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	m2 := make(map[string]interface{}, len(m))
	for k, v := range m {
		m2[k] = v
	}
	return m2
}

// String shows the message properties and body for debugging.
func (m *Message) String() string {
	return fmt.Sprintf("Message{address=%q subject=%q body=%v}", m.Address, m.Subject, m.Body)
}
