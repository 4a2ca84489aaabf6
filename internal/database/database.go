package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Variables Globales ---
var (
	Mongo   *mongo.Client
	MongoDB *mongo.Database
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Initialiser MongoDB (entity store)
	connectMongo(ctx)

	// 2. Initialiser Redis
	connectRedis(ctx)

	// 3. Initialiser Elasticsearch
	connectElastic()

	// 4. Initialiser MinIO
	connectMinIO(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// MONGODB (entity store : produits, pages, paniers, commandes...)
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "omnio"
	}

	Mongo = client
	MongoDB = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB :", dbName)
}

// CloseMongo ferme la connexion MongoDB
func CloseMongo() {
	if Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Mongo.Disconnect(ctx); err != nil {
		log.Printf("⚠️ Erreur fermeture MongoDB: %v", err)
	}
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// ELASTICSEARCH
// =============================================
func connectElastic() {
	cfg := elasticsearch.Config{
		Addresses: []string{os.Getenv("ELASTIC_URL")},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("❌ Erreur création client Elasticsearch:", err)
	}

	res, err := client.Info()
	if err != nil {
		log.Fatal("❌ Erreur connexion Elasticsearch:", err)
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connecté à Elasticsearch")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ Erreur connexion MinIO:", err)
	}

	imageBucket := os.Getenv("MINIO_BUCKET")
	if imageBucket == "" {
		imageBucket = "omnio-images"
	}
	invoiceBucket := os.Getenv("MINIO_INVOICE_BUCKET")
	if invoiceBucket == "" {
		invoiceBucket = "omnio-invoices"
	}

	for _, bucketName := range []string{imageBucket, invoiceBucket} {
		exists, err := client.BucketExists(ctx, bucketName)
		if err != nil {
			log.Fatal("❌ Erreur vérification bucket MinIO:", err)
		}
		if !exists {
			err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
			if err != nil {
				log.Fatal("❌ Erreur création bucket MinIO:", err)
			}
			log.Println("🪣 Bucket créé :", bucketName)
		} else {
			log.Println("🪣 Bucket MinIO déjà présent :", bucketName)
		}
	}

	MinIO = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}
