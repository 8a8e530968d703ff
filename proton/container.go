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
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LinkOptions are the per-link policy defaults a container applies when
// a link context is created, including links auto-opened on remote
// request.
type LinkOptions struct {
	CreditWindow int  `yaml:"credit_window"`
	AutoAccept   bool `yaml:"auto_accept"`
	AutoSettle   bool `yaml:"auto_settle"`
}

// Container represents a single AMQP "application" which can have
// multiple connections. Each container in a distributed AMQP
// application must have a unique container-id.
//
// Attaching a Container to a MessagingAdapter enables the MStart and
// MTimer events and makes the container's LinkDefaults the policy for
// new link contexts.
type Container struct {
	id string

	// LinkDefaults are applied to link contexts created while this
	// container is attached to an adapter.
	LinkDefaults LinkOptions
}

// NewContainer creates a new container. The id must be unique in your
// distributed application; if id == "" a random UUID is generated.
func NewContainer(id string) *Container {
	if id == "" {
		id = uuid.NewString()
	}
	return &Container{
		id: id,
		LinkDefaults: LinkOptions{
			CreditWindow: 10,
			AutoAccept:   true,
			AutoSettle:   true,
		},
	}
}

func (c *Container) Id() string { return c.id }

func (c *Container) String() string { return c.Id() }

// ContainerConfig is the YAML shape of container settings. Pointer
// fields distinguish "absent" from zero so unset keys keep the
// defaults.
//
//	id: my-app
//	link:
//	  credit_window: 50
//	  auto_accept: false
//	  auto_settle: true
type ContainerConfig struct {
	ID   string `yaml:"id"`
	Link struct {
		CreditWindow *int  `yaml:"credit_window"`
		AutoAccept   *bool `yaml:"auto_accept"`
		AutoSettle   *bool `yaml:"auto_settle"`
	} `yaml:"link"`
}

// NewContainerFromConfig creates a container from YAML settings data,
// applying defaults for any key the data does not set.
func NewContainerFromConfig(data []byte) (*Container, error) {
	var cfg ContainerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	c := NewContainer(cfg.ID)
	if cfg.Link.CreditWindow != nil {
		c.LinkDefaults.CreditWindow = *cfg.Link.CreditWindow
	}
	if cfg.Link.AutoAccept != nil {
		c.LinkDefaults.AutoAccept = *cfg.Link.AutoAccept
	}
	if cfg.Link.AutoSettle != nil {
		c.LinkDefaults.AutoSettle = *cfg.Link.AutoSettle
	}
	return c, nil
}
