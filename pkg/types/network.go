// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NetworkNode is one author in the collaboration graph.
type NetworkNode struct {
	// ID is the normalized full name; it is also the display label.
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	FirstName string `json:"firstName,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"lastName,omitempty" yaml:"last_name,omitempty"`

	PublicationCount  int `json:"publicationCount" yaml:"publication_count"`
	CollaboratorCount int `json:"collaboratorCount" yaml:"collaborator_count"`
	FirstYear         int `json:"firstYear" yaml:"first_year"`
	LastYear          int `json:"lastYear" yaml:"last_year"`

	Domains        []string `json:"domains" yaml:"domains"`
	PublicationIDs []int    `json:"publicationIds" yaml:"publication_ids"`
}

// CollaborationEdge joins two distinct authors who share at least one
// publication. Source sorts before Target, so each pair appears once.
type CollaborationEdge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	SharedPublicationIDs []int `json:"sharedPublicationIds" yaml:"shared_publication_ids"`
	Count                int   `json:"count" yaml:"count"`
	Years                []int `json:"years" yaml:"years"`

	// Weight is the sum of recency weights over shared publications.
	Weight float64 `json:"weight" yaml:"weight"`

	// Strength blends frequency and recency into [0,1].
	Strength float64 `json:"strength" yaml:"strength"`
}

// NodeDegree pairs a node ID with its degree.
type NodeDegree struct {
	ID     string `json:"id" yaml:"id"`
	Degree int    `json:"degree" yaml:"degree"`
}

// NetworkMetrics summarizes a collaboration graph. Betweenness and
// eigenvector centrality are not computed.
type NetworkMetrics struct {
	NodeCount     int          `json:"nodeCount" yaml:"node_count"`
	EdgeCount     int          `json:"edgeCount" yaml:"edge_count"`
	Density       float64      `json:"density" yaml:"density"`
	AverageDegree float64      `json:"averageDegree" yaml:"average_degree"`
	MaxDegree     int          `json:"maxDegree" yaml:"max_degree"`
	TopConnected  []NodeDegree `json:"topConnected" yaml:"top_connected"`
}

// Network is the collaboration graph handed to visualization consumers.
type Network struct {
	Nodes   []NetworkNode       `json:"nodes" yaml:"nodes"`
	Edges   []CollaborationEdge `json:"edges" yaml:"edges"`
	Metrics NetworkMetrics      `json:"metrics" yaml:"metrics"`
}
