// Package mongo connects l10ncheck to MongoDB catalogs.
//
// Catalogs are stored one document per catalog and locale in the collection
// named by Config.Collection and read by catalog.MongoLoader.
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	loader := catalog.NewMongoLoader(mongo.CatalogCollection(client, cfg))
package mongo
