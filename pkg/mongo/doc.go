// Package mongo connects to MongoDB with mongo-driver/v2 and exposes a health probe.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	users := auth.NewMongoStorage(db)
//	sessions := session.NewMongoStore(db)
package mongo
