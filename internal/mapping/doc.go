// Package mapping holds the field mapping history of an endpoint: the
// stored associations between source paths (in a request or response
// payload) and target paths (in the normalized integration schema).
//
// Mappings are read-only input to validation and target suggestion; they
// are applied by an external mapping executor. A history can be kept as a
// YAML file:
//
//	version: "1"
//	endpoint: getCidade
//	mappings:
//	  - direction: response
//	    source: SOAP-ENV:Body[*].ns1:getCidadeResponse[*].cidade
//	    target: city.name
//	  - direction: request
//	    source: cep
//	    target: postalCode
//
// An omitted direction defaults to "response".
package mapping
