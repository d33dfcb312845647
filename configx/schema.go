// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package configx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ory/jsonschema/v3"
)

const FeaturesSchemaID = "https://github.com/clinia/featuretoggles/configx/features.schema.json"

const FeaturesSchema = `{
  "$id": "` + FeaturesSchemaID + `",
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "features": {
      "type": "object",
      "propertyNames": {
        "pattern": "\\S"
      },
      "additionalProperties": {
        "type": "boolean"
      }
    }
  }
}`

func newCompiler(schema []byte) (string, *jsonschema.Compiler, error) {
	id := gjson.GetBytes(schema, "$id").String()
	if id == "" {
		id = fmt.Sprintf("%s.json", uuid.Must(uuid.NewRandom()).String())
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(id, bytes.NewBuffer(schema)); err != nil {
		return "", nil, errors.WithStack(err)
	}

	return id, compiler, nil
}

func compileSchema(ctx context.Context, schema []byte) (*jsonschema.Schema, error) {
	id, c, err := newCompiler(schema)
	if err != nil {
		return nil, err
	}
	s, err := c.Compile(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}
