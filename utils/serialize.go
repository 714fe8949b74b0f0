package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDoc converts a raw stored document into its transport form:
// the Mongo "_id" becomes a string "id", native date/time values become
// RFC 3339 strings, everything else passes through. Re-serializing an
// already serialized document is a no-op.
func SerializeDoc(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = serializeValue(v)
	}
	if raw, ok := out["_id"]; ok {
		switch id := raw.(type) {
		case primitive.ObjectID:
			out["id"] = id.Hex()
		default:
			out["id"] = id
		}
		delete(out, "_id")
	}
	return out
}

func serializeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case primitive.A:
		arr := make([]interface{}, len(t))
		for i, e := range t {
			arr[i] = serializeValue(e)
		}
		return arr
	default:
		return v
	}
}
