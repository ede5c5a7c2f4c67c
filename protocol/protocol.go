// Package protocol defines the wire shapes this module exchanges with the
// neuron framework that embeds it: a graph request sent to a problem
// source, the LambdaGraph it returns, and the response payload a miner
// sends back with a candidate maximum clique.
//
// This package owns marshaling and signature verification only. Wallet
// management, chain sync, and the transport that carries these bytes
// belong to the embedding neuron and are out of scope here.
package protocol

// SignedRequest envelopes a payload with its signature, mirroring the
// generic request wrapper the embedding neuron framework uses for every
// outbound call.
type SignedRequest[T any] struct {
	Payload   T      `json:"payload"`
	Signature string `json:"signature"`
}

// GraphRequestPayload is the body signed and sent to a remote problem
// source asking for a LambdaGraph meeting the given constraints.
type GraphRequestPayload struct {
	Timestamp         int64  `json:"timestamp"`
	Hotkey            string `json:"hotkey"`
	UUID              string `json:"uuid"`
	NetUID            int    `json:"netuid"`
	Label             string `json:"label,omitempty"`
	NumberOfNodesMin  *int   `json:"number_of_nodes_min,omitempty"`
	NumberOfNodesMax  *int   `json:"number_of_nodes_max,omitempty"`
	NumberOfEdgesMin  *int   `json:"number_of_edges_min,omitempty"`
	NumberOfEdgesMax  *int   `json:"number_of_edges_max,omitempty"`
}

// GraphResponse is what a problem source returns for a GraphRequestPayload.
type GraphResponse struct {
	UUID          string  `json:"uuid"`
	Label         string  `json:"label"`
	NumberOfNodes int     `json:"number_of_nodes"`
	AdjacencyList [][]int `json:"adjacency_list"`
}

// MaximumCliqueOfLambdaGraph is the miner-to-validator synapse: the graph
// the miner was asked to solve, echoed back, plus its candidate clique.
// AdjacencyList may be left empty on the response to reduce payload size —
// the validator already holds its own copy to score against.
type MaximumCliqueOfLambdaGraph struct {
	UUID           string  `json:"uuid"`
	Label          string  `json:"label"`
	NumberOfNodes  int     `json:"number_of_nodes"`
	AdjacencyList  [][]int `json:"adjacency_list,omitempty"`
	MaximumClique  []int   `json:"maximum_clique"`
}
