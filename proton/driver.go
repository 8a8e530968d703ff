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
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Closed is an alias for io.EOF. A Collector returns it when the engine
// has shut down the connection cleanly and no further events will be
// produced.
var Closed = io.EOF

// Collector is the event-iteration interface to the protocol engine: it
// yields the raw events of one connection, one at a time, in the order
// the engine produced them. Next returns Closed after the last event of
// a cleanly shut down connection, or another error if the engine failed.
type Collector interface {
	Next() (Event, error)
}

// Driver pumps the events of a single connection from a Collector
// through a list of EventHandlers. Each event is handled to completion
// by every handler before the next is fetched.
type Driver struct {
	collector Collector
	handlers  []EventHandler
}

// NewDriver creates a driver dispatching the collector's events to the
// given handlers in order.
func NewDriver(c Collector, handlers ...EventHandler) *Driver {
	return &Driver{collector: c, handlers: handlers}
}

// Run dispatches events until the collector is exhausted. It returns
// nil on clean shutdown (Closed) or the collector's error otherwise.
// Run must not be called concurrently for the same connection.
func (d *Driver) Run() error {
	for {
		e, err := d.collector.Next()
		if err == Closed {
			return nil
		}
		if err != nil {
			return err
		}
		Logger().Debug("engine event", zap.Stringer("type", e.Type()))
		for _, h := range d.handlers {
			h.HandleEvent(e)
		}
	}
}

// Group runs one driver per connection, each on its own goroutine.
// Connections share no state, so the drivers need no synchronization
// between them.
type Group struct {
	drivers []*Driver
}

// Add registers a driver with the group. Call before Run.
func (g *Group) Add(d *Driver) { g.drivers = append(g.drivers, d) }

// Run runs all drivers concurrently and waits for them to finish.
// It returns the first error any driver returned.
func (g *Group) Run() error {
	var eg errgroup.Group
	for _, d := range g.drivers {
		d := d
		eg.Go(d.Run)
	}
	return eg.Wait()
}
