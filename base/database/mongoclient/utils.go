package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = fmt.Errorf("patch payload is not a struct")
)

// MakeBsonM turns a patch payload into a $set document.
// Nil pointers and zero values are left out, a non-nil pointer is always written
// so a field can be reset to its zero value.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patchable))
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	typ := val.Type()

	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}
		switch {
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				res[tag.Name] = field.Elem().Interface()
			}
		case !field.IsZero():
			res[tag.Name] = field.Interface()
		}
	}
	return res, nil
}
