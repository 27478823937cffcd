package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/query"
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// parseObjectID convierte un id en ObjectID; un id mal formado equivale a "no existe".
func parseObjectID(resource, id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound(resource, id)
	}
	return objID, nil
}

// timestamp redondea a milisegundos, la precisión con la que MongoDB guarda las fechas.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// findPage devuelve la página pedida y el total de documentos que cumplen el filtro.
// Son dos consultas independientes: un alta o baja concurrente puede desalinearlas.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, win query.Window) ([]T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(query.NewestFirst()).
		SetSkip(win.Skip()).
		SetLimit(int64(win.Limit))

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, win.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// findOneByID busca por _id y traduce ErrNoDocuments a NotFoundError.
func findOneByID[T any](ctx context.Context, coll *mongo.Collection, resource, id string) (*T, error) {
	objID, err := parseObjectID(resource, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out T
	if err := coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(resource, id)
		}
		return nil, apperrors.Fault("find "+resource, err)
	}
	return &out, nil
}

// updateStages arma la actualización como pipeline. Los valores van dentro de $literal
// para que un texto que empieza por "$" no se lea como referencia a un campo.
// updatedAt avanza siempre: max(ahora, anterior + 1ms). createdAt no se toca.
func updateStages(set bson.M, unset []string, now time.Time) mongo.Pipeline {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(bson.D, 0, len(keys)+1)
	for _, k := range keys {
		fields = append(fields, bson.E{Key: k, Value: bson.M{"$literal": set[k]}})
	}
	fields = append(fields, bson.E{Key: "updatedAt", Value: bson.M{
		"$max": bson.A{now, bson.M{"$add": bson.A{"$updatedAt", 1}}},
	}})

	stages := mongo.Pipeline{{{Key: "$set", Value: fields}}}
	if len(unset) > 0 {
		stages = append(stages, bson.D{{Key: "$unset", Value: unset}})
	}
	return stages
}

// updateOneByID aplica set/unset y devuelve el documento resultante.
func updateOneByID[T any](ctx context.Context, coll *mongo.Collection, resource, id string, set bson.M, unset []string, now time.Time) (*T, error) {
	objID, err := parseObjectID(resource, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, updateStages(set, unset, now), opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(resource, id)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(resource, err)
		}
		return nil, apperrors.Fault("update "+resource, err)
	}
	return &out, nil
}

// deleteOneByID borra el documento; un id inexistente (o ya borrado) es NotFoundError.
func deleteOneByID(ctx context.Context, coll *mongo.Collection, resource, id string) error {
	objID, err := parseObjectID(resource, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperrors.Fault("delete "+resource, err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound(resource, id)
	}
	return nil
}

func count(ctx context.Context, coll *mongo.Collection, resource string, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.Fault("count "+resource, err)
	}
	return n, nil
}
