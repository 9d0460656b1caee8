package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	carsCollection = "allcars"
	bidsCollection = "bids"
)

// Store owns the Mongo client lifecycle and hands out the collection-backed
// store implementations. Connect at startup, Close on shutdown.
type Store struct {
	client *mongo.Client
	cars   *mongo.Collection
	bids   *mongo.Collection
}

// NewStore connects to Mongo, verifies the connection and binds the
// collections
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client: client,
		cars:   db.Collection(carsCollection),
		bids:   db.Collection(bidsCollection),
	}, nil
}

// Close disconnects the underlying client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Cars returns the CarStore backed by this connection
func (s *Store) Cars() CarStore {
	return &mongoCarStore{cars: s.cars, bids: s.bids}
}

// Bids returns the BidStore backed by this connection
func (s *Store) Bids() BidStore {
	return &mongoBidStore{bids: s.bids}
}

// catalogFilter builds the shared predicate for catalog page and count
// reads: exact brand match AND'd with a case-insensitive OR-group over
// model/brand/category.
func catalogFilter(q CatalogQuery) bson.M {
	filter := bson.M{}
	if q.Brand != "" {
		filter["brand_name"] = q.Brand
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"model_name": re},
			bson.M{"brand_name": re},
			bson.M{"category": re},
		}
	}
	return filter
}

// catalogSort returns the sort document for q, or nil when unsorted.
// The _id tie-break keeps equal datelines in insertion order so paging is
// deterministic.
func catalogSort(q CatalogQuery) bson.D {
	switch q.Sort {
	case SortAscending:
		return bson.D{{Key: "dateline", Value: 1}, {Key: "_id", Value: 1}}
	case SortDescending:
		return bson.D{{Key: "dateline", Value: -1}, {Key: "_id", Value: 1}}
	}
	return nil
}

type mongoCarStore struct {
	cars *mongo.Collection
	bids *mongo.Collection
}

func (s *mongoCarStore) InsertCar(ctx context.Context, car model.Car) (model.Car, error) {
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	if _, err := s.cars.InsertOne(ctx, car); err != nil {
		return model.Car{}, fmt.Errorf("store: insert car: %w", err)
	}
	return car, nil
}

func (s *mongoCarStore) ListCars(ctx context.Context) ([]model.Car, error) {
	cursor, err := s.cars.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: list cars: %w", err)
	}
	return decodeCars(ctx, cursor)
}

func (s *mongoCarStore) SearchCars(ctx context.Context, q CatalogQuery) ([]model.Car, error) {
	opts := options.Find()
	if sortDoc := catalogSort(q); sortDoc != nil {
		opts.SetSort(sortDoc)
	}
	if q.Size > 0 {
		opts.SetSkip(q.Page * q.Size).SetLimit(q.Size)
	}

	cursor, err := s.cars.Find(ctx, catalogFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("store: search cars: %w", err)
	}
	return decodeCars(ctx, cursor)
}

func (s *mongoCarStore) CountCars(ctx context.Context, q CatalogQuery) (int64, error) {
	count, err := s.cars.CountDocuments(ctx, catalogFilter(q))
	if err != nil {
		return 0, fmt.Errorf("store: count cars: %w", err)
	}
	return count, nil
}

func (s *mongoCarStore) GetCarByID(ctx context.Context, id string) (model.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Car{}, fmt.Errorf("get car %s: %w", id, aucterrors.ErrCarNotFound)
	}

	var car model.Car
	err = s.cars.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Car{}, fmt.Errorf("get car %s: %w", id, aucterrors.ErrCarNotFound)
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("store: get car %s: %w", id, err)
	}
	return car, nil
}

func (s *mongoCarStore) ListCarsByParticipant(ctx context.Context, email string) ([]model.Car, error) {
	rawIDs, err := s.bids.Distinct(ctx, "car_id", bson.M{"bidder_email": email})
	if err != nil {
		return nil, fmt.Errorf("store: participant bids for %s: %w", email, err)
	}
	bidCarIDs := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if objectID, ok := raw.(primitive.ObjectID); ok {
			bidCarIDs = append(bidCarIDs, objectID)
		}
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"seller_email": email},
		bson.M{"_id": bson.M{"$in": bidCarIDs}},
	}}
	cursor, err := s.cars.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store: cars for participant %s: %w", email, err)
	}
	return decodeCars(ctx, cursor)
}

func (s *mongoCarStore) ReplaceCar(ctx context.Context, id string, car model.Car, replaceGallery bool) (model.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Car{}, fmt.Errorf("replace car %s: %w", id, aucterrors.ErrCarNotFound)
	}

	set := bson.M{
		"brand_name":          car.BrandName,
		"model_name":          car.ModelName,
		"category":            car.Category,
		"country":             car.Country,
		"price_range":         car.PriceRange,
		"dateline":            car.Dateline,
		"availability_status": car.AvailabilityStatus,
		"main_image":          car.MainImage,
		"features":            car.Features,
	}
	if replaceGallery {
		set["gallery_images"] = car.GalleryImages
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Car
	err = s.cars.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Car{}, fmt.Errorf("replace car %s: %w", id, aucterrors.ErrCarNotFound)
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("store: replace car %s: %w", id, err)
	}
	return updated, nil
}

func (s *mongoCarStore) DeleteCar(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete car %s: %w", id, aucterrors.ErrCarNotFound)
	}

	result, err := s.cars.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("store: delete car %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete car %s: %w", id, aucterrors.ErrCarNotFound)
	}
	return nil
}

type mongoBidStore struct {
	bids *mongo.Collection
}

func (s *mongoBidStore) InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	if bid.ID.IsZero() {
		bid.ID = primitive.NewObjectID()
	}
	if _, err := s.bids.InsertOne(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("store: insert bid: %w", err)
	}
	return bid, nil
}

func (s *mongoBidStore) GetBidByID(ctx context.Context, id string) (model.Bid, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, aucterrors.ErrBidNotFound)
	}

	var bid model.Bid
	err = s.bids.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, aucterrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("store: get bid %s: %w", id, err)
	}
	return bid, nil
}

func (s *mongoBidStore) ListBidsByBidder(ctx context.Context, email string) ([]model.Bid, error) {
	return s.findBids(ctx, bson.M{"bidder_email": email})
}

func (s *mongoBidStore) ListBidsBySeller(ctx context.Context, email string) ([]model.Bid, error) {
	return s.findBids(ctx, bson.M{"seller_email": email})
}

func (s *mongoBidStore) findBids(ctx context.Context, filter bson.M) ([]model.Bid, error) {
	cursor, err := s.bids.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store: find bids: %w", err)
	}
	bids := make([]model.Bid, 0)
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("store: decode bids: %w", err)
	}
	return bids, nil
}

func (s *mongoBidStore) UpdateBidStatus(ctx context.Context, id string, status model.BidStatus) (model.Bid, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", id, aucterrors.ErrBidNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Bid
	err = s.bids.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", id, aucterrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("store: update bid %s: %w", id, err)
	}
	return updated, nil
}

func decodeCars(ctx context.Context, cursor *mongo.Cursor) ([]model.Car, error) {
	cars := make([]model.Car, 0)
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("store: decode cars: %w", err)
	}
	return cars, nil
}
